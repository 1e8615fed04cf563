// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connection they share.
type Storages struct {
	CertificateRepository CertificateRepository

	db *DB
}

// NewStorages selects the backend from cfg.DSN:
//   - empty or "memory": in-process maps
//   - "postgres://" or "postgresql://": PostgreSQL via pgx
//   - anything else: a SQLite file at that path
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" || dsn == "memory" {
		log.Info().Msg("using in-memory certificate storage")
		return &Storages{CertificateRepository: NewMemoryCertificateRepository(log)}, nil
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, config.DB{DSN: dsn}, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CertificateRepository: NewCertificateRepository(db, log),
		db:                    db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
