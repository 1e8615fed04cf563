// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import "errors"

var (
	ErrInvalidTemplate   = errors.New("invalid certificate template")
	ErrExecutingTemplate = errors.New("error executing certificate template")
)
