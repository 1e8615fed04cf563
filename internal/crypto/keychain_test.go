// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSealKey(t *testing.T) {
	k := NewKeyChain()

	first := k.DeriveSealKey("correct horse battery staple")
	second := k.DeriveSealKey("correct horse battery staple")
	other := k.DeriveSealKey("correct horse battery stapler")

	assert.Len(t, first, 32)
	assert.Equal(t, first, second, "derivation must be deterministic")
	assert.NotEqual(t, first, other)
}

func TestDeriveSealKey_EmptyPassphrase(t *testing.T) {
	assert.Len(t, NewKeyChain().DeriveSealKey(""), 32)
}
