// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-03-01", "9f8e7d")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-03-01", info.BuildDate())
	assert.Equal(t, "9f8e7d", info.BuildCommit())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-03-01\nBuild commit: 9f8e7d", info.String())
}

func TestNewAppBuildInfo_MissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}
