// Copyright 2022 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"errors"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags restores the default FlagSet so each test starts from a clean
// slate; the flag package's global CommandLine is otherwise only parsed
// once per process.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func withArgs(t *testing.T, args []string, fn func()) {
	t.Helper()

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = append([]string{"x509validate"}, args...)
	resetFlags()
	fn()
}

func TestNewRequiresServerOrFilename(t *testing.T) {
	withArgs(t, []string{"--ca-file", "testdata/ca.pem"}, func() {
		_, err := New(AppType{Plugin: true})
		if err == nil {
			t.Fatal("expected error when neither server nor filename is provided")
		}
	})
}

func TestNewRejectsServerAndFilenameTogether(t *testing.T) {
	withArgs(t, []string{
		"--server", "www.example.com",
		"--filename", "chain.pem",
		"--ca-file", "testdata/ca.pem",
	}, func() {
		_, err := New(AppType{Inspecter: true})
		if err == nil {
			t.Fatal("expected error when both server and filename are provided")
		}
	})
}

func TestNewRequiresCAFile(t *testing.T) {
	withArgs(t, []string{"--server", "www.example.com"}, func() {
		_, err := New(AppType{Plugin: true})
		if err == nil {
			t.Fatal("expected error when no trust anchor file is provided")
		}
	})
}

func TestNewDefaultsDNSNameToServer(t *testing.T) {
	withArgs(t, []string{
		"--server", "www.example.com",
		"--ca-file", "testdata/ca.pem",
	}, func() {
		cfg, err := New(AppType{Plugin: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DNSName != "www.example.com" {
			t.Errorf("want DNSName %q, got %q", "www.example.com", cfg.DNSName)
		}
	})
}

func TestExpirationAgeThresholds(t *testing.T) {
	tests := []struct {
		name        string
		ageCritical string
		ageWarning  string
		wantErr     bool
	}{
		{name: "ExplicitDefaults", ageCritical: "15", ageWarning: "30", wantErr: false},
		{name: "CriticalHigherThanWarning", ageCritical: "80", ageWarning: "50", wantErr: true},
		{name: "EqualThresholds", ageCritical: "30", ageWarning: "30", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, []string{
				"--server", "www.example.com",
				"--ca-file", "testdata/ca.pem",
				"--age-critical", tt.ageCritical,
				"--age-warning", tt.ageWarning,
			}, func() {
				_, err := New(AppType{Plugin: true})
				switch {
				case tt.wantErr && err == nil:
					t.Errorf("want error, got nil")
				case !tt.wantErr && err != nil:
					t.Errorf("want no error, got %v", err)
				}
			})
		})
	}
}

func TestNewVersionRequested(t *testing.T) {
	withArgs(t, []string{"--version"}, func() {
		_, err := New(AppType{Plugin: true})
		if !errors.Is(err, ErrVersionRequested) {
			t.Errorf("want %v, got %v", ErrVersionRequested, err)
		}
	})
}

func TestValidateLoggingLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "info", wantErr: false},
		{level: "INFO", wantErr: false},
		{level: "debug", wantErr: false},
		{level: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{
				Server:       "www.example.com",
				CAFile:       "testdata/ca.pem",
				Port:         defaultPort,
				LoggingLevel: tt.level,
				AgeWarning:   defaultCertExpireAgeWarning,
				AgeCritical:  defaultCertExpireAgeCritical,
			}

			err := cfg.validate(AppType{Plugin: true})
			if tt.wantErr && err == nil {
				t.Errorf("want error for logging level %q, got nil", tt.level)
			}
			if !tt.wantErr && err != nil && strings.Contains(err.Error(), "logging level") {
				t.Errorf("want no logging level error for %q, got %v", tt.level, err)
			}
		})
	}
}
