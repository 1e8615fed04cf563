// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
)

// memoryCertificateRepository keeps certificates in process memory.
//
// byID owns the records; byCode and byUser are secondary indexes holding ids.
// byUser lists ids in insertion order.
type memoryCertificateRepository struct {
	mu     sync.RWMutex
	byID   map[string]models.Certificate
	byCode map[string]string
	byUser map[string][]string

	logger *logger.Logger
}

// NewMemoryCertificateRepository returns an empty in-memory repository.
func NewMemoryCertificateRepository(log *logger.Logger) CertificateRepository {
	return &memoryCertificateRepository{
		byID:   make(map[string]models.Certificate),
		byCode: make(map[string]string),
		byUser: make(map[string][]string),
		logger: log,
	}
}

func (m *memoryCertificateRepository) Store(ctx context.Context, certificate models.Certificate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[certificate.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrCertificateAlreadyExists, certificate.ID)
	}
	if _, ok := m.byCode[certificate.UniqueCode]; ok {
		return fmt.Errorf("%w: %s", ErrUniqueCodeTaken, certificate.UniqueCode)
	}

	m.byID[certificate.ID] = certificate.Clone()
	m.byCode[certificate.UniqueCode] = certificate.ID
	m.byUser[certificate.UserID] = append(m.byUser[certificate.UserID], certificate.ID)

	m.logger.Debug().
		Str("certificate_id", certificate.ID).
		Int("stored", len(m.byID)).
		Msg("certificate stored in memory")

	return nil
}

func (m *memoryCertificateRepository) GetByID(ctx context.Context, id string) (models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return models.Certificate{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	certificate, ok := m.byID[id]
	if !ok {
		return models.Certificate{}, ErrCertificateNotFound
	}

	return certificate.Clone(), nil
}

func (m *memoryCertificateRepository) GetByCode(ctx context.Context, code string) (models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return models.Certificate{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byCode[code]
	if !ok {
		return models.Certificate{}, ErrCertificateNotFound
	}

	return m.byID[id].Clone(), nil
}

func (m *memoryCertificateRepository) ListByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	ids := m.byUser[userID]
	certificates := make([]models.Certificate, 0, len(ids))
	for _, id := range ids {
		certificates = append(certificates, m.byID[id].Clone())
	}
	m.mu.RUnlock()

	// newest first; equal timestamps keep the later insertion first
	slices.Reverse(certificates)
	slices.SortStableFunc(certificates, func(a, b models.Certificate) int {
		return b.IssuedAt.Compare(a.IssuedAt)
	})

	return certificates, nil
}

func (m *memoryCertificateRepository) ListAll(ctx context.Context) ([]models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	certificates := make([]models.Certificate, 0, len(m.byID))
	for _, certificate := range m.byID {
		certificates = append(certificates, certificate.Clone())
	}
	m.mu.RUnlock()

	slices.SortFunc(certificates, func(a, b models.Certificate) int {
		if c := a.IssuedAt.Compare(b.IssuedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return certificates, nil
}
