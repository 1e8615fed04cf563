// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeVerify mode = iota
	modeUser
)

const statusTimeout = 2 * time.Second

// replaced in tests
var writeClipboard = clipboard.WriteAll

type verifierModel struct {
	ctx           context.Context
	registry      adapter.RegistryAdapter
	verifyBaseURL string
	buildInfo     models.AppBuildInfo

	mode    mode
	input   textinput.Model
	spinner spinner.Model
	loading bool

	result *models.VerificationResult
	list   []models.CertificateResponse
	listed bool
	cursor int

	status   string
	errMsg   string
	showInfo bool
	width    int
}

func newVerifierModel(ctx context.Context, registry adapter.RegistryAdapter, verifyBaseURL string, buildInfo models.AppBuildInfo) verifierModel {
	in := textinput.New()
	in.CharLimit = 128
	in.Width = 40
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := verifierModel{
		ctx:           ctx,
		registry:      registry,
		verifyBaseURL: verifyBaseURL,
		buildInfo:     buildInfo,
		input:         in,
		spinner:       sp,
	}
	m.setPlaceholder()

	return m
}

func (m verifierModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m verifierModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case verifiedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		result := msg.result
		m.result = &result
		return m, nil

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list = msg.list.Certificates
		m.listed = true
		m.cursor = 0
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.url
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m verifierModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil

	case key.Matches(msg, keys.tab):
		if m.mode == modeVerify {
			m.mode = modeUser
		} else {
			m.mode = modeVerify
		}
		m.reset()
		m.setPlaceholder()
		return m, nil

	case key.Matches(msg, keys.esc):
		m.reset()
		return m, nil

	case key.Matches(msg, keys.enter):
		return m.submit()

	case key.Matches(msg, keys.copy):
		url := m.selectedCredentialURL()
		if url == "" {
			return m, nil
		}
		return m, copyCmd(url)

	case key.Matches(msg, keys.up):
		if m.mode == modeUser && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.mode == modeUser && m.cursor < len(m.list)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m verifierModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" || m.loading {
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	m.status = ""
	m.result = nil
	m.list = nil
	m.listed = false

	if m.mode == modeVerify {
		return m, tea.Batch(m.spinner.Tick, verifyCmd(m.ctx, m.registry, value))
	}
	return m, tea.Batch(m.spinner.Tick, listCmd(m.ctx, m.registry, value))
}

func (m *verifierModel) reset() {
	m.input.Reset()
	m.result = nil
	m.list = nil
	m.listed = false
	m.cursor = 0
	m.errMsg = ""
	m.status = ""
	m.loading = false
}

func (m *verifierModel) setPlaceholder() {
	if m.mode == modeVerify {
		m.input.Placeholder = "ABCD-EFGH-JKLM"
	} else {
		m.input.Placeholder = "learner id"
	}
}

// selectedCredentialURL returns the verification link of the certificate on
// screen, or "" when there is none.
func (m verifierModel) selectedCredentialURL() string {
	switch m.mode {
	case modeVerify:
		if m.result != nil && m.result.Certificate != nil {
			return m.result.Certificate.CredentialURL(m.verifyBaseURL)
		}
	case modeUser:
		if m.cursor < len(m.list) {
			if url := m.list[m.cursor].CredentialURL; url != "" {
				return url
			}
			return m.list[m.cursor].Certificate.CredentialURL(m.verifyBaseURL)
		}
	}
	return ""
}

func verifyCmd(ctx context.Context, registry adapter.RegistryAdapter, code string) tea.Cmd {
	return func() tea.Msg {
		result, err := registry.Verify(ctx, code)
		return verifiedMsg{result: result, err: err}
	}
}

func listCmd(ctx context.Context, registry adapter.RegistryAdapter, userID string) tea.Cmd {
	return func() tea.Msg {
		list, err := registry.ListUserCertificates(ctx, userID)
		return listLoadedMsg{list: list, err: err}
	}
}

func copyCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{url: url, err: writeClipboard(url)}
	}
}

func (m verifierModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	if m.mode == modeVerify {
		b.WriteString("Certificate code\n")
	} else {
		b.WriteString("Learner ID\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.mode == modeVerify && m.result != nil:
		b.WriteString(m.resultView())
	case m.mode == modeUser && m.listed:
		b.WriteString(m.listView())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(validStyle.Render(m.status))
	}

	title := "VERIFY CERTIFICATE"
	if m.mode == modeUser {
		title = "LEARNER CERTIFICATES"
	}

	return renderPage(title, b.String(), m.hotKeys())
}

func (m verifierModel) resultView() string {
	r := m.result

	var headline string
	switch {
	case r.Valid:
		headline = validStyle.Render("✓ Certificate is valid")
	case r.Reason == models.VerificationReasonExpired:
		headline = warningStyle.Render("! " + r.Message)
	default:
		headline = errorStyle.Render("✗ " + r.Message)
	}

	if r.Certificate == nil {
		return headline
	}
	return headline + "\n\n" + boxStyle.Render(renderCertificate(*r.Certificate))
}

func (m verifierModel) listView() string {
	if len(m.list) == 0 {
		return helpStyle.Render("No certificates issued to this learner")
	}

	maxWidth := 0
	if m.width > 0 {
		maxWidth = m.width - 12
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d certificate(s)\n\n", len(m.list))
	for i, c := range m.list {
		line := fitText(fmt.Sprintf("%s  %s  %s", c.UniqueCode, c.ModuleTitle, c.OrganizationName), maxWidth)
		if i == m.cursor {
			b.WriteString(selectStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boxStyle.Render(renderCertificate(m.list[m.cursor].Certificate)))

	return b.String()
}

func (m verifierModel) hotKeys() string {
	parts := []string{"enter: search", "tab: switch mode", "esc: clear"}
	if m.mode == modeUser && len(m.list) > 1 {
		parts = append(parts, "↑/↓: select")
	}
	if m.selectedCredentialURL() != "" {
		parts = append(parts, "ctrl+y: copy link")
	}
	parts = append(parts, "ctrl+b: about")
	return strings.Join(parts, " | ")
}
