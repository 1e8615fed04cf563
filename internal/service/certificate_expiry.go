// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
)

const daysPerFixedMonth = 30

// ExpiryPolicy computes the expiration instant of a certificate issued at
// issuedAt that is valid for months months.
type ExpiryPolicy func(issuedAt time.Time, months int) time.Time

// Fixed30 counts every month as 30 days, so 12 months is 360 days.
func Fixed30(issuedAt time.Time, months int) time.Time {
	return issuedAt.Add(time.Duration(months) * daysPerFixedMonth * 24 * time.Hour)
}

// Calendar adds calendar months, normalizing overflowing days the way
// [time.Time.AddDate] does.
func Calendar(issuedAt time.Time, months int) time.Time {
	return issuedAt.AddDate(0, months, 0)
}

// ExpiryPolicyByName resolves a configured policy name. An empty name selects
// Fixed30.
func ExpiryPolicyByName(name string) (ExpiryPolicy, error) {
	switch name {
	case "", config.ExpiryPolicyFixed30:
		return Fixed30, nil
	case config.ExpiryPolicyCalendar:
		return Calendar, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExpiryPolicy, name)
	}
}
