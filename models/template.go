// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CertificateDesign names a visual variant of the certificate document.
type CertificateDesign string

const (
	DesignModern  CertificateDesign = "modern"
	DesignClassic CertificateDesign = "classic"
	DesignElegant CertificateDesign = "elegant"
	DesignMinimal CertificateDesign = "minimal"
)

// CertificateTemplate is the presentation-only configuration used when
// rendering a certificate. It has no effect on the certificate data or its
// digests.
type CertificateTemplate struct {
	ID             string             `json:"id"`
	Name           string             `json:"name" validate:"required,notblank,max=128"`
	Design         CertificateDesign  `json:"design" validate:"required,oneof=modern classic elegant minimal"`
	PrimaryColor   string             `json:"primary_color" validate:"required,len=7,hexcolor"`
	SecondaryColor string             `json:"secondary_color" validate:"required,len=7,hexcolor"`
	LogoURL        string             `json:"logo_url,omitempty" validate:"omitempty,url"`
	Signature      *TemplateSignature `json:"signature,omitempty"`
}

// TemplateSignature is the optional signatory printed on the certificate.
type TemplateSignature struct {
	Name         string `json:"name" validate:"required,notblank,max=128"`
	Title        string `json:"title" validate:"required,notblank,max=128"`
	SignatureURL string `json:"signature_url,omitempty" validate:"omitempty,url"`
}

// DefaultTemplate returns the template used when the caller does not supply one.
func DefaultTemplate() CertificateTemplate {
	return CertificateTemplate{
		ID:             "default",
		Name:           "ScaledNative Standard Certificate",
		Design:         DesignModern,
		PrimaryColor:   "#00D9FF",
		SecondaryColor: "#8B5CF6",
	}
}
