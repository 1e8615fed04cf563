// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/internal/mock"
	"github.com/MKhiriev/go-cert-registry/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testVerifyBaseURL = "https://certs.example.com/verify"

func testCertificate() models.Certificate {
	score := 92.0
	return models.Certificate{
		ID:               "cert-1",
		UniqueCode:       "ABCD-EFGH-JKLM",
		UserID:           "user-123",
		UserName:         "Jane Doe",
		OrganizationID:   "org-acme",
		OrganizationName: "Acme Health",
		ModuleID:         "hipaa-101",
		ModuleTitle:      "HIPAA Fundamentals",
		CompletionDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Score:            &score,
		VerificationHash: "0f516567ac3a886cb42b056cd7b887f6",
		Metadata:         models.CertificateMetadata{Duration: "Self-paced"},
	}
}

func newTestModel(t *testing.T) (verifierModel, *mock.MockRegistryAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryAdapter(ctrl)
	return newVerifierModel(context.Background(), registry, testVerifyBaseURL, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")), registry
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(m verifierModel, text string) verifierModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(verifierModel)
}

// press sends k and returns the model together with the command it produced.
func press(m verifierModel, k tea.KeyType) (verifierModel, tea.Cmd) {
	next, cmd := m.Update(keyPress(k))
	return next.(verifierModel), cmd
}

// runBatch executes cmd and feeds every resulting message except spinner
// ticks back into the model.
func runBatch(t *testing.T, m verifierModel, cmd tea.Cmd) verifierModel {
	t.Helper()
	require.NotNil(t, cmd)

	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	default:
		msgs = append(msgs, msg)
	}

	for _, msg := range msgs {
		switch msg.(type) {
		case verifiedMsg, listLoadedMsg, copiedMsg:
			next, _ := m.Update(msg)
			m = next.(verifierModel)
		}
	}
	return m
}

// ── verify mode ───────────────────────────────────────────────────────────────

func TestVerifierModel_VerifyValid(t *testing.T) {
	m, registry := newTestModel(t)
	cert := testCertificate()
	registry.EXPECT().Verify(gomock.Any(), "ABCD-EFGH-JKLM").Return(models.NewValidResult(cert), nil)

	m = typeText(m, "ABCD-EFGH-JKLM")
	m, cmd := press(m, tea.KeyEnter)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Checking")

	m = runBatch(t, m, cmd)

	assert.False(t, m.loading)
	require.NotNil(t, m.result)
	view := m.View()
	assert.Contains(t, view, "Certificate is valid")
	assert.Contains(t, view, "Jane Doe")
	assert.Contains(t, view, "HIPAA Fundamentals")
	assert.Contains(t, view, "January 15, 2024")
	assert.Contains(t, view, "92%")
	assert.Contains(t, view, "ctrl+y: copy link")
}

func TestVerifierModel_VerifyOutcomes(t *testing.T) {
	cert := testCertificate()

	tests := []struct {
		name     string
		result   models.VerificationResult
		wantText string
		wantCert bool
	}{
		{
			name:     "expired",
			result:   models.NewInvalidResult(models.VerificationReasonExpired, &cert),
			wantText: "Certificate has expired",
			wantCert: true,
		},
		{
			name:     "not found",
			result:   models.NewInvalidResult(models.VerificationReasonNotFound, nil),
			wantText: "Certificate not found",
		},
		{
			name:     "tampered",
			result:   models.NewInvalidResult(models.VerificationReasonIntegrityCheckFailed, nil),
			wantText: "Certificate integrity check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, registry := newTestModel(t)
			registry.EXPECT().Verify(gomock.Any(), "ABCD-EFGH-JKLM").Return(tt.result, nil)

			m = typeText(m, "ABCD-EFGH-JKLM")
			m, cmd := press(m, tea.KeyEnter)
			m = runBatch(t, m, cmd)

			view := m.View()
			assert.Contains(t, view, tt.wantText)
			if tt.wantCert {
				assert.Contains(t, view, "Jane Doe")
			} else {
				assert.NotContains(t, view, "Jane Doe")
				assert.NotContains(t, view, "copy link")
			}
		})
	}
}

func TestVerifierModel_VerifyTransportError(t *testing.T) {
	m, registry := newTestModel(t)
	registry.EXPECT().Verify(gomock.Any(), gomock.Any()).
		Return(models.VerificationResult{}, errors.New("dial tcp 127.0.0.1:8080: connection refused"))

	m = typeText(m, "ABCD-EFGH-JKLM")
	m, cmd := press(m, tea.KeyEnter)
	m = runBatch(t, m, cmd)

	assert.Nil(t, m.result)
	assert.Contains(t, m.View(), "No network or the registry is unavailable")
}

func TestVerifierModel_EmptyInputDoesNothing(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(m, "   ")
	m, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
}

func TestVerifierModel_EscClears(t *testing.T) {
	m, registry := newTestModel(t)
	registry.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.NewValidResult(testCertificate()), nil)

	m = typeText(m, "ABCD-EFGH-JKLM")
	m, cmd := press(m, tea.KeyEnter)
	m = runBatch(t, m, cmd)
	require.NotNil(t, m.result)

	m, _ = press(m, tea.KeyEsc)

	assert.Nil(t, m.result)
	assert.Empty(t, m.input.Value())
}

// ── user mode ─────────────────────────────────────────────────────────────────

func TestVerifierModel_ListUserCertificates(t *testing.T) {
	m, registry := newTestModel(t)

	first := testCertificate()
	second := testCertificate()
	second.ID = "cert-2"
	second.UniqueCode = "NPQR-STUV-WXYZ"
	second.ModuleTitle = "Fire Safety"

	registry.EXPECT().ListUserCertificates(gomock.Any(), "user-123").Return(models.CertificateListResponse{
		Certificates: []models.CertificateResponse{
			models.NewCertificateResponse(second, testVerifyBaseURL),
			models.NewCertificateResponse(first, testVerifyBaseURL),
		},
		Length: 2,
	}, nil)

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, modeUser, m.mode)

	m = typeText(m, "user-123")
	m, cmd := press(m, tea.KeyEnter)
	m = runBatch(t, m, cmd)

	view := m.View()
	assert.Contains(t, view, "2 certificate(s)")
	assert.Contains(t, view, "> NPQR-STUV-WXYZ")
	assert.Equal(t, testVerifyBaseURL+"/NPQR-STUV-WXYZ", m.selectedCredentialURL())

	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, testVerifyBaseURL+"/ABCD-EFGH-JKLM", m.selectedCredentialURL())

	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor, "cursor stays on the last entry")

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, 0, m.cursor)
}

func TestVerifierModel_ListEmpty(t *testing.T) {
	m, registry := newTestModel(t)
	registry.EXPECT().ListUserCertificates(gomock.Any(), "nobody").
		Return(models.CertificateListResponse{Certificates: []models.CertificateResponse{}}, nil)

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "nobody")
	m, cmd := press(m, tea.KeyEnter)
	m = runBatch(t, m, cmd)

	assert.Contains(t, m.View(), "No certificates issued to this learner")
	assert.Empty(t, m.selectedCredentialURL())
}

func TestVerifierModel_TabResets(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(m, "ABCD")
	m, _ = press(m, tea.KeyTab)

	assert.Equal(t, modeUser, m.mode)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "LEARNER CERTIFICATES")

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, modeVerify, m.mode)
	assert.Contains(t, m.View(), "VERIFY CERTIFICATE")
}

// ── clipboard, about, quit ────────────────────────────────────────────────────

func TestVerifierModel_CopyCredentialURL(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	m, registry := newTestModel(t)
	registry.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.NewValidResult(testCertificate()), nil)

	m = typeText(m, "ABCD-EFGH-JKLM")
	m, cmd := press(m, tea.KeyEnter)
	m = runBatch(t, m, cmd)

	m, cmd = press(m, tea.KeyCtrlY)
	m = runBatch(t, m, cmd)

	assert.Equal(t, testVerifyBaseURL+"/ABCD-EFGH-JKLM", copied)
	assert.Contains(t, m.View(), "Copied "+copied)

	next, _ := m.Update(clearStatusMsg{})
	assert.Empty(t, next.(verifierModel).status)
}

func TestVerifierModel_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(copiedMsg{url: "x", err: fmt.Errorf("no clipboard utility")})

	assert.Contains(t, next.(verifierModel).View(), "Could not copy to clipboard")
}

func TestVerifierModel_CopyWithoutCertificate(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(m, tea.KeyCtrlY)

	assert.Nil(t, cmd)
}

func TestVerifierModel_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, tea.KeyCtrlB)
	view := m.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	m = typeText(m, "ignored")
	assert.Empty(t, m.input.Value())

	m, _ = press(m, tea.KeyEsc)
	assert.False(t, m.showInfo)
}

func TestVerifierModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// ── helpers ───────────────────────────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("%w: missing", adapter.ErrNotFound), "Nothing found"},
		{"bad request", fmt.Errorf("%w: bad", adapter.ErrBadRequest), "The registry rejected the input"},
		{"refused", errors.New("dial tcp: connection refused"), "No network or the registry is unavailable"},
		{"timeout", context.DeadlineExceeded, "No network or the registry is unavailable"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "hello", fitText("hello", 5))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "hel", fitText("hello", 3))
}

func TestRenderCertificate_OptionalFields(t *testing.T) {
	cert := testCertificate()
	cert.Score = nil
	expires := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	cert.ExpiresAt = &expires

	out := renderCertificate(cert)

	assert.NotContains(t, out, "Score")
	assert.Contains(t, out, "Expires: January 15, 2025")
}
