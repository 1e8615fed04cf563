// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cert-registry/internal/render"
	"github.com/MKhiriev/go-cert-registry/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderCertificate lists the facts of c, one per line.
func renderCertificate(c models.Certificate) string {
	var b strings.Builder

	field := func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(valueOrDash(value))
		b.WriteString("\n")
	}

	field("Learner", c.UserName)
	field("Course", c.ModuleTitle)
	field("Organization", c.OrganizationName)
	field("Completed", render.FormatDate(c))
	if c.ExpiresAt != nil {
		field("Expires", c.ExpiresAt.UTC().Format(render.DateLayout))
	}
	if c.Score != nil {
		field("Score", strconv.FormatFloat(*c.Score, 'f', -1, 64)+"%")
	}
	field("Duration", c.Metadata.Duration)
	field("Code", c.UniqueCode)
	field("Hash", c.VerificationHash)

	return strings.TrimSuffix(b.String(), "\n")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
