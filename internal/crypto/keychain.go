// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto derives the registry's signing material from operator
// supplied secrets.
package crypto

import (
	"golang.org/x/crypto/argon2"
)

// sealSalt domain-separates seal keys from any other use of the passphrase.
// It must never change: every stored seal depends on it.
const sealSalt = "cert-registry/seal/v1"

// KeyChain stretches passphrases into fixed-length keys with Argon2id.
type KeyChain struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain returns a KeyChain with the OWASP (2024) low-memory Argon2id
// profile:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
func NewKeyChain() *KeyChain {
	return &KeyChain{
		argonTime:    2,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

// DeriveSealKey turns passphrase into the HMAC key used to seal certificates.
// The derivation is deterministic, so the same passphrase always yields the
// same key across restarts and replicas.
func (k *KeyChain) DeriveSealKey(passphrase string) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		[]byte(sealSalt),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}
