// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpRegistryAdapter {
	t.Helper()
	cfg := config.ClientConfig{ServerAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPRegistryAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRegistryAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPRegistryAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRegistryAdapter(config.ClientConfig{ServerAddress: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://certs.example.com/", want: "https://certs.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestVerify_Valid(t *testing.T) {
	score := 92.0
	want := models.NewValidResult(models.Certificate{ID: "cert-1", UniqueCode: "ABCD-EFGH-JKLM", Score: &score})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/verify/ABCD-EFGH-JKLM", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Verify(context.Background(), " ABCD-EFGH-JKLM ")

	require.NoError(t, err)
	assert.True(t, got.Valid)
	require.NotNil(t, got.Certificate)
	assert.Equal(t, "cert-1", got.Certificate.ID)
	assert.Equal(t, 92.0, *got.Certificate.Score)
}

func TestVerify_NotFoundIsAResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.NewInvalidResult(models.VerificationReasonNotFound, nil))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Verify(context.Background(), "ZZZZ-ZZZZ-ZZZZ")

	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, models.VerificationReasonNotFound, got.Reason)
	assert.Equal(t, "Certificate not found", got.Message)
	assert.Nil(t, got.Certificate)
}

func TestVerify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"storage unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Verify(context.Background(), "ABCD-EFGH-JKLM")

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "storage unavailable")
}

// ── GetCertificate ───────────────────────────────────────────────────────────

func TestGetCertificate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/certificates/cert-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.NewCertificateResponse(
			models.Certificate{ID: "cert-1", UniqueCode: "ABCD-EFGH-JKLM"}, "https://example.com/verify"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetCertificate(context.Background(), "cert-1")

	require.NoError(t, err)
	assert.Equal(t, "cert-1", got.ID)
	assert.Equal(t, "https://example.com/verify/ABCD-EFGH-JKLM", got.CredentialURL)
}

func TestGetCertificate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetCertificate(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── ListUserCertificates ─────────────────────────────────────────────────────

func TestListUserCertificates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/user 1/certificates", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.CertificateListResponse{
			Certificates: []models.CertificateResponse{
				{Certificate: models.Certificate{ID: "new"}},
				{Certificate: models.Certificate{ID: "old"}},
			},
			Length: 2,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListUserCertificates(context.Background(), "user 1")

	require.NoError(t, err)
	require.Len(t, got.Certificates, 2)
	assert.Equal(t, "new", got.Certificates[0].ID)
}

func TestListUserCertificates_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUserCertificates(context.Background(), "x")

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── ServerVersion ────────────────────────────────────────────────────────────

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestServerVersion_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ServerVersion(context.Background())

	assert.Error(t, err)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusConflict, ErrConflict},
		{http.StatusNotImplemented, ErrNotImplemented},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
