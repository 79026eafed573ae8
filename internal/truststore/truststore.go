// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package truststore implements the chain.CertificateStore external
// collaborator: a lookup from subject distinguished name to trusted
// anchor certificate, loaded from a PEM bundle file.
package truststore

import (
	"fmt"

	"github.com/chainwalk/x509validator/internal/certload"
	"github.com/chainwalk/x509validator/internal/chain"
)

// Store is an in-memory index of trust anchors keyed by subject DN.
type Store struct {
	bySubject map[string]chain.SignedCertificate
}

// New builds an empty Store. Use Add or LoadFile to populate it.
func New() *Store {
	return &Store{bySubject: make(map[string]chain.SignedCertificate)}
}

// LoadFile reads filename as a PEM bundle of trust anchors and loads every
// certificate found into the returned Store.
func LoadFile(filename string) (*Store, error) {
	certs, err := certload.LoadTrustAnchors(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load trust anchors from %s: %w", filename, err)
	}

	store := New()
	for _, cert := range certs {
		store.Add(certload.Wrap(cert))
	}

	return store, nil
}

// Add indexes cert under its subject DN. A later Add for the same subject
// DN replaces the earlier entry.
func (s *Store) Add(cert chain.SignedCertificate) {
	s.bySubject[cert.SubjectDN()] = cert
}

// Len reports how many trust anchors are currently indexed.
func (s *Store) Len() int {
	return len(s.bySubject)
}

// FindCertificate implements chain.CertificateStore.
func (s *Store) FindCertificate(dn string) (chain.SignedCertificate, bool) {
	cert, ok := s.bySubject[dn]
	return cert, ok
}
