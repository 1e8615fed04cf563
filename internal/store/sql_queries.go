// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cert-registry/models"
)

const certificatesTable = "certificates"

// certificateColumns is the column order shared by INSERT and SELECT; scan
// targets in scanCertificate follow the same order.
var certificateColumns = []string{
	"id",
	"unique_code",
	"user_id",
	"user_name",
	"organization_id",
	"organization_name",
	"module_id",
	"module_title",
	"issued_at",
	"completion_date",
	"expires_at",
	"score",
	"verification_hash",
	"seal_hash",
	"metadata",
}

func buildInsertCertificateQuery(builder squirrel.StatementBuilderType, c models.Certificate) (string, []any, error) {
	metadata, err := json.Marshal(c.Metadata)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingMetadata, err)
	}

	var expiresAt any
	if c.ExpiresAt != nil {
		expiresAt = c.ExpiresAt.UTC()
	}
	var score any
	if c.Score != nil {
		score = *c.Score
	}

	query, args, err := builder.
		Insert(certificatesTable).
		Columns(certificateColumns...).
		Values(
			c.ID,
			c.UniqueCode,
			c.UserID,
			c.UserName,
			c.OrganizationID,
			c.OrganizationName,
			c.ModuleID,
			c.ModuleTitle,
			c.IssuedAt.UTC(),
			c.CompletionDate.UTC(),
			expiresAt,
			score,
			c.VerificationHash,
			c.SealHash,
			string(metadata),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectCertificatesQuery selects full certificate rows matching where,
// ordered by orderBy clauses. A nil where selects every row.
func buildSelectCertificatesQuery(builder squirrel.StatementBuilderType, where squirrel.Sqlizer, orderBy ...string) (string, []any, error) {
	selectBuilder := builder.
		Select(certificateColumns...).
		From(certificatesTable)

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}
	if len(orderBy) > 0 {
		selectBuilder = selectBuilder.OrderBy(orderBy...)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
