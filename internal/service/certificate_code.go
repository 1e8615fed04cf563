// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"io"
	"strings"
)

const (
	// codeAlphabet leaves out I, O, 0 and 1, which are easy to misread.
	codeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeSymbols     = 12
	codeGroupLength = 4
	codeSeparator   = '-'
)

// generateUniqueCode draws a code of the form XXXX-XXXX-XXXX from random.
//
// The alphabet has 32 symbols, so the low five bits of each byte select a
// symbol without modulo bias.
func generateUniqueCode(random io.Reader) (string, error) {
	buf := make([]byte, codeSymbols)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingUniqueCode, err)
	}

	var sb strings.Builder
	sb.Grow(codeSymbols + codeSymbols/codeGroupLength - 1)
	for i, b := range buf {
		if i > 0 && i%codeGroupLength == 0 {
			sb.WriteByte(codeSeparator)
		}
		sb.WriteByte(codeAlphabet[int(b)&(len(codeAlphabet)-1)])
	}

	return sb.String(), nil
}

// NormalizeCode canonicalizes a code typed or pasted by a verifier: it trims
// whitespace, uppercases and re-inserts the group separators when they were
// left out. Input that does not have exactly twelve symbols is only trimmed
// and uppercased.
func NormalizeCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))

	compact := strings.Map(func(r rune) rune {
		if r == codeSeparator || r == ' ' {
			return -1
		}
		return r
	}, code)
	if len(compact) != codeSymbols {
		return code
	}

	var sb strings.Builder
	for i := 0; i < codeSymbols; i += codeGroupLength {
		if i > 0 {
			sb.WriteByte(codeSeparator)
		}
		sb.WriteString(compact[i : i+codeGroupLength])
	}

	return sb.String()
}
