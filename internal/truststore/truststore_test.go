// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package truststore

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/chainwalk/x509validator/internal/certload"
)

func selfSignedCA(t *testing.T, commonName string) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("failed to parse generated certificate: %v", err)
	}

	return cert
}

func TestStoreAddAndFind(t *testing.T) {
	store := New()
	ca := selfSignedCA(t, "Test Root CA")
	store.Add(certload.Wrap(ca))

	if store.Len() != 1 {
		t.Fatalf("want 1 entry, got %d", store.Len())
	}

	got, ok := store.FindCertificate(ca.Subject.String())
	if !ok {
		t.Fatal("expected to find anchor by subject DN")
	}
	if got.SubjectDN() != ca.Subject.String() {
		t.Errorf("want subject %q, got %q", ca.Subject.String(), got.SubjectDN())
	}
}

func TestStoreFindCertificateMiss(t *testing.T) {
	store := New()
	if _, ok := store.FindCertificate("CN=Nonexistent"); ok {
		t.Fatal("expected lookup miss on empty store")
	}
}

func TestStoreAddReplacesExistingSubject(t *testing.T) {
	store := New()
	first := selfSignedCA(t, "Shared CN")
	second := selfSignedCA(t, "Shared CN")

	store.Add(certload.Wrap(first))
	store.Add(certload.Wrap(second))

	if store.Len() != 1 {
		t.Fatalf("want 1 entry after overwrite, got %d", store.Len())
	}

	got, ok := store.FindCertificate(first.Subject.String())
	if !ok {
		t.Fatal("expected to find anchor by shared subject DN")
	}
	if got.Raw() == nil {
		t.Fatal("expected replaced entry to be retrievable")
	}
}
