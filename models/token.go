// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an issuer JWT with convenience accessors.
//
// Issuer tokens authorize certificate issuance on behalf of one organization:
// the "sub" claim carries the organization identifier.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OrganizationID is a cached copy of the "sub" claim.
	OrganizationID string `json:"-"`
}

// GetOrganizationID returns the organization identifier held in the "sub" claim.
func (t *Token) GetOrganizationID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("empty subject in token")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
