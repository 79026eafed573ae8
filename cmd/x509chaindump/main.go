// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atc0005/cert-payload/input"
	"github.com/atc0005/cert-payload/payload"
	"github.com/grantae/certinfo"

	"github.com/chainwalk/x509validator/internal/certload"
	"github.com/chainwalk/x509validator/internal/chain"
	"github.com/chainwalk/x509validator/internal/config"
	"github.com/chainwalk/x509validator/internal/signer"
	"github.com/chainwalk/x509validator/internal/textutils"
	"github.com/chainwalk/x509validator/internal/truststore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "x509chaindump:", err)
		os.Exit(1)
	}
}

func run() error {
	chain.SetSignatureVerifier(signer.New())

	cfg, cfgErr := config.New(config.AppType{Inspecter: true})
	switch {
	case errors.Is(cfgErr, config.ErrVersionRequested):
		fmt.Println(config.Version())
		return nil
	case cfgErr != nil:
		return cfgErr
	}

	store, err := truststore.LoadFile(cfg.CAFile)
	if err != nil {
		return fmt.Errorf("failed to load trust anchors: %w", err)
	}

	var rawCerts []*x509.Certificate
	var server input.Server

	switch {
	case cfg.Filename != "":
		var leftovers []byte
		rawCerts, leftovers, err = certload.GetCertsFromFile(cfg.Filename)
		if err != nil {
			return fmt.Errorf("failed to parse certificate file %q: %w", cfg.Filename, err)
		}
		if len(leftovers) > 0 {
			cfg.Log.Warn().
				Int("leftover_bytes", len(leftovers)).
				Str("filename", cfg.Filename).
				Msg("unparsed bytes remaining at end of certificate file")
		}

	case cfg.Server != "":
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()

		rawCerts, err = certload.GetCertsFromServer(ctx, cfg.Server, cfg.Port, cfg.Timeout())
		if err != nil {
			return fmt.Errorf("failed to fetch certificate chain from %s:%d: %w", cfg.Server, cfg.Port, err)
		}

		server = input.Server{HostValue: cfg.Server}
	}

	if len(rawCerts) == 0 {
		return errors.New("no certificates found")
	}

	certChain := certload.WrapChain(rawCerts)

	checks := chain.DefaultChecks()
	checks.CheckExhaustive = cfg.Exhaustive
	checks.CheckStrictOrdering = cfg.StrictOrdering
	checks.CheckLeafV3 = cfg.RequireLeafV3

	params := chain.Params{Time: time.Now(), Hostname: cfg.DNSName}
	reasons := chain.ValidateWith(params, chain.DefaultHooks(), checks, store, certChain)

	serviceState := "OK"
	if len(reasons) > 0 {
		serviceState = "CRITICAL"
	}

	if cfg.EmitCertText {
		textutils.PrintHeader("CERTIFICATE CHAIN | OpenSSL Text Format")
		for _, cert := range rawCerts {
			text, textErr := certinfo.CertificateText(cert)
			if textErr != nil {
				cfg.Log.Warn().Err(textErr).Str("subject", cert.Subject.String()).Msg("failed to render certificate text")
				continue
			}
			fmt.Println(text)
		}

		textutils.PrintHeader("CERTIFICATE CHAIN | FINGERPRINTS")
		for _, wrapped := range certChain {
			sum := chain.GetFingerprint(wrapped)
			fmt.Printf("%s  %s\n", textutils.InsertDelimiter(fmt.Sprintf("%x", sum), ":", 2), wrapped.SubjectDN())
		}
	}

	var validationErrs []error
	for _, r := range reasons {
		validationErrs = append(validationErrs, fmt.Errorf("%s", r.String()))
	}

	inputValues := input.Values{
		CertChain:                             rawCerts,
		Errors:                                validationErrs,
		IncludeFullCertChain:                  true,
		Server:                                server,
		DNSName:                               cfg.DNSName,
		TCPPort:                               cfg.Port,
		ExpirationAgeInDaysWarningThreshold:   cfg.AgeWarning,
		ExpirationAgeInDaysCriticalThreshold:  cfg.AgeCritical,
		ServiceState:                          serviceState,
	}

	out, err := payload.EncodeLatest(inputValues)
	if err != nil {
		return fmt.Errorf("failed to encode certificate chain payload: %w", err)
	}

	fmt.Println(string(out))

	return nil
}
