// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import (
	"testing"
	"time"
)

func TestDefaultValidateTime(t *testing.T) {
	cert := newLeaf("CN=leaf", "CN=issuer", "leaf")

	tests := []struct {
		name     string
		now      time.Time
		wantKind Kind
		wantOK   bool
	}{
		{name: "Valid", now: testTime, wantOK: true},
		{name: "NotYetValid", now: cert.notBefore.Add(-time.Minute), wantKind: InFuture},
		{name: "Expired", now: cert.notAfter.Add(time.Minute), wantKind: Expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultValidateTime(tt.now, cert)
			if tt.wantOK {
				if len(got) != 0 {
					t.Fatalf("want no failures, got %v", got)
				}
				return
			}
			if len(got) != 1 || got[0].Kind != tt.wantKind {
				t.Fatalf("want [%v], got %v", tt.wantKind, got)
			}
		})
	}
}
