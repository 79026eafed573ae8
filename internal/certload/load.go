// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package certload

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// pemBlockTypeCRTBegin is the marker this package scans for to decide
// whether a file is PEM (rather than raw ASN.1 DER) encoded.
const pemBlockTypeCRTBegin = "-----BEGIN CERTIFICATE-----"

// ErrEmptyCertificateFile indicates that a specified certificate file was
// read successfully but no bytes were found.
var ErrEmptyCertificateFile = errors.New("certificate file contains no data")

// GetCertsFromFile reads filename and returns the certificate chain it
// contains. Both PEM and raw ASN.1 (binary) DER encodings are supported.
// Any trailing bytes that could not be parsed are returned alongside the
// chain for the caller to surface as a diagnostic.
func GetCertsFromFile(filename string) ([]*x509.Certificate, []byte, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, nil, err
	}

	if len(data) == 0 {
		return nil, nil, fmt.Errorf("failed to decode %s as certificate file: %w", filename, ErrEmptyCertificateFile)
	}

	if bytes.Contains(data, []byte(pemBlockTypeCRTBegin)) {
		certs, leftovers, err := ParsePEMCertificates(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode %s as PEM formatted certificate file: %w", filename, err)
		}
		return certs, leftovers, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s as ASN.1 (binary) DER formatted certificate file: %w", filename, err)
	}
	return certs, nil, nil
}

// ParsePEMCertificates decodes every PEM certificate block in pemData, in
// order. Any bytes following the last successfully decoded block are
// returned as leftovers for the caller to report.
func ParsePEMCertificates(pemData []byte) ([]*x509.Certificate, []byte, error) {
	var certChain []*x509.Certificate

	block, rest := pem.Decode(pemData)
	if block == nil {
		return nil, nil, errors.New("failed to find a PEM formatted block")
	}

	for block != nil {
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, nil, err
		}
		certChain = append(certChain, cert)

		if len(rest) == 0 {
			break
		}
		block, rest = pem.Decode(rest)
	}

	return certChain, rest, nil
}

// LoadTrustAnchors reads filename as a bundle of trust anchors, accepting
// the same PEM or DER encodings as GetCertsFromFile. Unlike
// GetCertsFromFile, unparsed trailing bytes are an error rather than being
// returned to the caller.
func LoadTrustAnchors(filename string) ([]*x509.Certificate, error) {
	certs, leftovers, err := GetCertsFromFile(filename)
	if err != nil {
		return nil, err
	}
	if len(leftovers) > 0 {
		return nil, fmt.Errorf("%d unparsed bytes remaining in trust anchor file %q", len(leftovers), filename)
	}
	return certs, nil
}
