// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
)

// certificateRepository is the SQL implementation of [CertificateRepository]
// shared by the PostgreSQL and SQLite backends.
type certificateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCertificateRepository returns a [CertificateRepository] over db.
func NewCertificateRepository(db *DB, log *logger.Logger) CertificateRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating certificate repository")
	return &certificateRepository{
		db:     db,
		logger: log,
	}
}

// Store inserts the certificate. Uniqueness violations are reported as
// ErrCertificateAlreadyExists or ErrUniqueCodeTaken.
func (r *certificateRepository) Store(ctx context.Context, certificate models.Certificate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCertificateQuery(r.db.builder, certificate)
	if err != nil {
		log.Err(err).Str("func", "*certificateRepository.Store").Msg("failed to build insert query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if conflict := r.db.errorClassificator.Conflict(err); conflict != nil {
			log.Warn().Err(err).
				Str("func", "*certificateRepository.Store").
				Str("certificate_id", certificate.ID).
				Msg("certificate uniqueness conflict")
			return fmt.Errorf("%w: %w", conflict, err)
		}

		log.Err(err).
			Str("func", "*certificateRepository.Store").
			Str("certificate_id", certificate.ID).
			Msg("failed to insert certificate")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *certificateRepository) GetByID(ctx context.Context, id string) (models.Certificate, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "*certificateRepository.GetByID")
}

func (r *certificateRepository) GetByCode(ctx context.Context, code string) (models.Certificate, error) {
	return r.getOne(ctx, squirrel.Eq{"unique_code": code}, "*certificateRepository.GetByCode")
}

// ListByUser returns the user's certificates newest first. Ties on issued_at
// are broken by id, which is time-ordered for UUIDv7 identifiers.
func (r *certificateRepository) ListByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	return r.getMany(ctx, squirrel.Eq{"user_id": userID}, "*certificateRepository.ListByUser", "issued_at DESC", "id DESC")
}

func (r *certificateRepository) ListAll(ctx context.Context) ([]models.Certificate, error) {
	return r.getMany(ctx, nil, "*certificateRepository.ListAll", "issued_at ASC", "id ASC")
}

func (r *certificateRepository) getOne(ctx context.Context, where squirrel.Sqlizer, funcName string) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCertificatesQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return models.Certificate{}, err
	}

	var certificate models.Certificate
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		certificate, scanErr = scanCertificate(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Certificate{}, ErrCertificateNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query certificate")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return certificate, nil
}

func (r *certificateRepository) getMany(ctx context.Context, where squirrel.Sqlizer, funcName string, orderBy ...string) ([]models.Certificate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCertificatesQuery(r.db.builder, where, orderBy...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build select query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	certificates := make([]models.Certificate, 0, 16)
	for rows.Next() {
		certificate, scanErr := scanCertificate(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan certificate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		certificates = append(certificates, certificate)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return certificates, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertificate(row rowScanner) (models.Certificate, error) {
	var (
		c         models.Certificate
		expiresAt sql.NullTime
		score     sql.NullFloat64
		metadata  string
	)

	err := row.Scan(
		&c.ID,
		&c.UniqueCode,
		&c.UserID,
		&c.UserName,
		&c.OrganizationID,
		&c.OrganizationName,
		&c.ModuleID,
		&c.ModuleTitle,
		&c.IssuedAt,
		&c.CompletionDate,
		&expiresAt,
		&score,
		&c.VerificationHash,
		&c.SealHash,
		&metadata,
	)
	if err != nil {
		return models.Certificate{}, err
	}

	c.IssuedAt = c.IssuedAt.UTC()
	c.CompletionDate = c.CompletionDate.UTC()
	if expiresAt.Valid {
		t := expiresAt.Time.UTC()
		c.ExpiresAt = &t
	}
	if score.Valid {
		s := score.Float64
		c.Score = &s
	}
	if err = json.Unmarshal([]byte(metadata), &c.Metadata); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrDecodingMetadata, err)
	}

	return c, nil
}
