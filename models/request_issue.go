// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IssueRequest carries the caller-supplied facts a certificate is issued from.
type IssueRequest struct {
	UserID           string `json:"user_id" validate:"required,notblank,max=128"`
	UserName         string `json:"user_name" validate:"required,notblank,max=256"`
	OrganizationID   string `json:"organization_id" validate:"required,notblank,max=128"`
	OrganizationName string `json:"organization_name" validate:"required,notblank,max=256"`
	ModuleID         string `json:"module_id" validate:"required,notblank,max=128"`
	ModuleTitle      string `json:"module_title" validate:"required,notblank,max=256"`

	// CompletionDate is when the learner finished the module.
	CompletionDate time.Time `json:"completion_date" validate:"required"`

	// Score is an optional percentage.
	Score *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Duration is a label such as "4 hours". Defaults to "Self-paced".
	Duration      string   `json:"duration,omitempty" validate:"max=64"`
	Credits       *float64 `json:"credits,omitempty" validate:"omitempty,gte=0"`
	Instructor    string   `json:"instructor,omitempty" validate:"max=256"`
	Accreditation string   `json:"accreditation,omitempty" validate:"max=256"`

	// ExpiresInMonths sets the validity period. Nil or zero means the
	// certificate never expires.
	ExpiresInMonths *int `json:"expires_in_months,omitempty" validate:"omitempty,gte=0,lte=1200"`
}
