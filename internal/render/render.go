// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns a certificate and a visual template into a
// self-contained HTML document.
//
// Rendering is pure: the output depends only on its inputs, so the same
// certificate and template always produce byte-identical documents.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cert-registry/models"
)

// DateLayout is the completion date format printed on certificates.
const DateLayout = "January 2, 2006"

//go:embed templates/*.tmpl
var templatesFS embed.FS

var certificateTemplate = template.Must(template.ParseFS(templatesFS, "templates/certificate.html.tmpl"))

// colors reach a <style> block unescaped, so only #RRGGBB is accepted
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Renderer produces certificate documents whose verification footer links to
// verifyBaseURL.
type Renderer struct {
	verifyBaseURL string
	verifyHost    string
}

// NewRenderer returns a Renderer for the given verification base URL, e.g.
// "https://example.com/verify".
func NewRenderer(verifyBaseURL string) *Renderer {
	return &Renderer{
		verifyBaseURL: verifyBaseURL,
		verifyHost:    displayURL(verifyBaseURL),
	}
}

type designStyle struct {
	background template.CSS
	bodyFont   template.CSS
	textColor  template.CSS
	mutedColor template.CSS
	glow       bool
}

var designStyles = map[models.CertificateDesign]designStyle{
	models.DesignModern: {
		background: "linear-gradient(135deg, #0A1628 0%, #162032 100%)",
		bodyFont:   "'Inter', sans-serif",
		textColor:  "white",
		mutedColor: "#CBD5E1",
		glow:       true,
	},
	models.DesignClassic: {
		background: "#FBF8F1",
		bodyFont:   "'Playfair Display', serif",
		textColor:  "#1E293B",
		mutedColor: "#475569",
	},
	models.DesignElegant: {
		background: "linear-gradient(135deg, #111827 0%, #1F2937 100%)",
		bodyFont:   "'Playfair Display', serif",
		textColor:  "#F8FAFC",
		mutedColor: "#CBD5E1",
		glow:       true,
	},
	models.DesignMinimal: {
		background: "white",
		bodyFont:   "'Inter', sans-serif",
		textColor:  "#0F172A",
		mutedColor: "#64748B",
	},
}

type certificateView struct {
	Certificate    models.Certificate
	CompletionDate string
	Score          string
	CredentialURL  string
	VerifyHost     string

	Design         models.CertificateDesign
	PrimaryColor   template.CSS
	SecondaryColor template.CSS
	Background     template.CSS
	BodyFont       template.CSS
	TextColor      template.CSS
	MutedColor     template.CSS
	Glow           bool
	LogoURL        string
	Signature      *models.TemplateSignature
}

// Render builds the HTML document for certificate using tmpl. All certificate
// text is HTML-escaped. Colors must be #RRGGBB and the design one of the
// known variants, otherwise ErrInvalidTemplate is returned.
func (r *Renderer) Render(certificate models.Certificate, tmpl models.CertificateTemplate) (string, error) {
	view, err := r.view(certificate, tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = certificateTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingTemplate, err)
	}

	return buf.String(), nil
}

func (r *Renderer) view(certificate models.Certificate, tmpl models.CertificateTemplate) (certificateView, error) {
	if !hexColorRegex.MatchString(tmpl.PrimaryColor) || !hexColorRegex.MatchString(tmpl.SecondaryColor) {
		return certificateView{}, fmt.Errorf("%w: colors must be #RRGGBB", ErrInvalidTemplate)
	}
	style, ok := designStyles[tmpl.Design]
	if !ok {
		return certificateView{}, fmt.Errorf("%w: unknown design %q", ErrInvalidTemplate, tmpl.Design)
	}

	view := certificateView{
		Certificate:    certificate,
		CompletionDate: FormatDate(certificate),
		CredentialURL:  certificate.CredentialURL(r.verifyBaseURL),
		VerifyHost:     r.verifyHost,
		Design:         tmpl.Design,
		PrimaryColor:   template.CSS(tmpl.PrimaryColor),
		SecondaryColor: template.CSS(tmpl.SecondaryColor),
		Background:     style.background,
		BodyFont:       style.bodyFont,
		TextColor:      style.textColor,
		MutedColor:     style.mutedColor,
		Glow:           style.glow,
		LogoURL:        tmpl.LogoURL,
		Signature:      tmpl.Signature,
	}
	if certificate.Score != nil {
		view.Score = strconv.FormatFloat(*certificate.Score, 'f', -1, 64)
	}

	return view, nil
}

// FormatDate returns the completion date as printed on the certificate.
func FormatDate(certificate models.Certificate) string {
	return certificate.CompletionDate.UTC().Format(DateLayout)
}

// displayURL strips the scheme and trailing slash from rawURL for display.
func displayURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimRight(rawURL, "/")
	}
	return strings.TrimRight(u.Host+u.Path, "/")
}
