// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import (
	"crypto/x509"
	"testing"
)

func TestCheckLeafVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  int
		required bool
		wantFail bool
	}{
		{name: "V3Required", version: 2, required: true, wantFail: false},
		{name: "V1RejectedWhenRequired", version: 0, required: true, wantFail: true},
		{name: "V1AllowedWhenNotRequired", version: 0, required: false, wantFail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := newLeaf("CN=leaf", "CN=issuer", "leaf")
			leaf.version = tt.version

			got := checkLeafVersion(Checks{CheckLeafV3: tt.required}, leaf)
			if tt.wantFail && (len(got) != 1 || got[0].Kind != LeafNotV3) {
				t.Fatalf("want [LeafNotV3], got %v", got)
			}
			if !tt.wantFail && len(got) != 0 {
				t.Fatalf("want no failures, got %v", got)
			}
		})
	}
}

func TestCheckLeafKeyUsage(t *testing.T) {
	tests := []struct {
		name     string
		required x509.KeyUsage
		present  bool
		usage    x509.KeyUsage
		wantFail bool
	}{
		{name: "AbsentExtensionPasses", required: x509.KeyUsageDigitalSignature, present: false, wantFail: false},
		{name: "SatisfiedRequirement", required: x509.KeyUsageDigitalSignature, present: true, usage: x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment, wantFail: false},
		{name: "UnsatisfiedRequirement", required: x509.KeyUsageDigitalSignature, present: true, usage: x509.KeyUsageKeyEncipherment, wantFail: true},
		{name: "NoRequirement", required: 0, present: true, usage: x509.KeyUsageKeyEncipherment, wantFail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := newLeaf("CN=leaf", "CN=issuer", "leaf")
			leaf.hasKeyUsage = tt.present
			leaf.keyUsage = tt.usage

			got := checkLeafKeyUsage(Checks{CheckLeafKeyUsage: tt.required}, leaf)
			if tt.wantFail && (len(got) != 1 || got[0].Kind != LeafKeyUsageNotAllowed) {
				t.Fatalf("want [LeafKeyUsageNotAllowed], got %v", got)
			}
			if !tt.wantFail && len(got) != 0 {
				t.Fatalf("want no failures, got %v", got)
			}
		})
	}
}

func TestCheckLeafKeyPurpose(t *testing.T) {
	tests := []struct {
		name     string
		required []x509.ExtKeyUsage
		present  bool
		purposes []x509.ExtKeyUsage
		wantFail bool
	}{
		{name: "AbsentExtensionPasses", required: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}, present: false, wantFail: false},
		{name: "SatisfiedRequirement", required: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}, present: true, purposes: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth}, wantFail: false},
		{name: "UnsatisfiedRequirement", required: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}, present: true, purposes: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}, wantFail: true},
		{name: "ExtKeyUsageAnySatisfiesEverything", required: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}, present: true, purposes: []x509.ExtKeyUsage{x509.ExtKeyUsageAny}, wantFail: false},
		{name: "NoRequirement", required: nil, present: true, purposes: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}, wantFail: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := newLeaf("CN=leaf", "CN=issuer", "leaf")
			leaf.hasExtKeyUsage = tt.present
			leaf.extKeyUsage = tt.purposes

			got := checkLeafKeyPurpose(Checks{CheckLeafKeyPurpose: tt.required}, leaf)
			if tt.wantFail && (len(got) != 1 || got[0].Kind != LeafKeyPurposeNotAllowed) {
				t.Fatalf("want [LeafKeyPurposeNotAllowed], got %v", got)
			}
			if !tt.wantFail && len(got) != 0 {
				t.Fatalf("want no failures, got %v", got)
			}
		})
	}
}
