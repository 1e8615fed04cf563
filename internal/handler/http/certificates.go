// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/go-chi/chi/v5"
)

// issue creates a certificate for the organization the issuer token was
// minted for.
func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	organizationID, ok := utils.GetOrganizationIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingOrganization, "*Handler.issue")
		return
	}

	var req models.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.issue")
		return
	}

	// an empty organization is left to request validation
	if req.OrganizationID != "" && req.OrganizationID != organizationID {
		writeError(w, r, service.ErrOrganizationMismatch, "*Handler.issue")
		return
	}

	certificate, err := h.services.CertificateService.Issue(ctx, req)
	if err != nil {
		writeError(w, r, err, "*Handler.issue")
		return
	}

	writeJSON(w, r, models.NewCertificateResponse(certificate, h.verifyBaseURL), http.StatusCreated)
}

func (h *Handler) getCertificate(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.services.CertificateService.GetCertificate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getCertificate")
		return
	}

	writeJSON(w, r, models.NewCertificateResponse(certificate, h.verifyBaseURL), http.StatusOK)
}

func (h *Handler) listUserCertificates(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.services.CertificateService.ListUserCertificates(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err, "*Handler.listUserCertificates")
		return
	}

	response := models.CertificateListResponse{
		Certificates: make([]models.CertificateResponse, 0, len(certificates)),
		Length:       len(certificates),
	}
	for _, certificate := range certificates {
		response.Certificates = append(response.Certificates, models.NewCertificateResponse(certificate, h.verifyBaseURL))
	}

	writeJSON(w, r, response, http.StatusOK)
}

// renderHTML returns the certificate document. POST requests may carry a
// template whose fields override the default template.
func (h *Handler) renderHTML(w http.ResponseWriter, r *http.Request) {
	tmpl, err := templateFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.renderHTML")
		return
	}

	document, err := h.services.CertificateService.Render(r.Context(), chi.URLParam(r, "id"), tmpl)
	if err != nil {
		writeError(w, r, err, "*Handler.renderHTML")
		return
	}

	if _, err = utils.WriteHTML(w, document, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write certificate document")
	}
}

func (h *Handler) renderPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdf, err := h.services.CertificateService.RenderPDF(r.Context(), id, models.DefaultTemplate())
	if err != nil {
		writeError(w, r, err, "*Handler.renderPDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(pdf); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write certificate pdf")
	}
}

func templateFromRequest(r *http.Request) (models.CertificateTemplate, error) {
	tmpl := models.DefaultTemplate()
	if r.Method != http.MethodPost || r.Body == nil {
		return tmpl, nil
	}

	err := json.NewDecoder(r.Body).Decode(&tmpl)
	if errors.Is(err, io.EOF) {
		return models.DefaultTemplate(), nil
	}
	if err != nil {
		return models.CertificateTemplate{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return tmpl, nil
}
