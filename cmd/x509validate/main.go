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

	"github.com/atc0005/go-nagios"
	"github.com/rs/zerolog"

	"github.com/chainwalk/x509validator/internal/certload"
	"github.com/chainwalk/x509validator/internal/chain"
	"github.com/chainwalk/x509validator/internal/config"
	"github.com/chainwalk/x509validator/internal/signer"
	"github.com/chainwalk/x509validator/internal/truststore"
)

func main() {
	chain.SetSignatureVerifier(signer.New())

	plugin := nagios.NewPlugin()
	plugin.SetErrorsLabel("VALIDATION ERRORS")
	plugin.SetDetailedInfoLabel("VALIDATION CHECKS REPORT")

	defer plugin.ReturnCheckResults()

	cfg, cfgErr := config.New(config.AppType{Plugin: true})
	switch {
	case errors.Is(cfgErr, config.ErrVersionRequested):
		fmt.Println(config.Version())
		return

	case cfgErr != nil:
		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
		logger := zerolog.New(consoleWriter).With().Timestamp().Caller().Logger()
		logger.Err(cfgErr).Msg("Error initializing application")

		plugin.ServiceOutput = fmt.Sprintf("%s: Error initializing application", nagios.StateUNKNOWNLabel)
		plugin.AddError(cfgErr)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		return
	}

	if cfg.EmitBranding {
		plugin.BrandingCallback = config.Branding("Notification generated by ")
	}

	log := cfg.Log

	store, storeErr := truststore.LoadFile(cfg.CAFile)
	if storeErr != nil {
		log.Error().Err(storeErr).Msg("Error loading trust anchors")
		plugin.AddError(storeErr)
		plugin.ServiceOutput = fmt.Sprintf("%s: Error loading trust anchor file %q", nagios.StateUNKNOWNLabel, cfg.CAFile)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		return
	}

	var rawCerts []*x509.Certificate
	var certChainSource string

	switch {
	case cfg.Filename != "":
		log.Debug().Msg("Attempting to parse certificate file")

		var leftovers []byte
		var err error
		rawCerts, leftovers, err = certload.GetCertsFromFile(cfg.Filename)
		if err != nil {
			log.Error().Err(err).Msg("Error parsing certificates file")
			plugin.AddError(err)
			plugin.ServiceOutput = fmt.Sprintf("%s: Error parsing certificates file %q", nagios.StateCRITICALLabel, cfg.Filename)
			plugin.ExitStatusCode = nagios.StateCRITICALExitCode
			return
		}

		certChainSource = cfg.Filename

		if len(leftovers) > 0 {
			msg := fmt.Errorf("%d unknown/unparsed bytes remaining at end of cert file %q", len(leftovers), cfg.Filename)
			log.Error().Err(msg).Msg("Unknown data encountered while parsing certificates file")
			plugin.AddError(msg)
			plugin.ServiceOutput = fmt.Sprintf("%s: Unknown data encountered while parsing certificates file %q", nagios.StateWARNINGLabel, cfg.Filename)
			plugin.ExitStatusCode = nagios.StateWARNINGExitCode
			return
		}

	case cfg.Server != "":
		log.Debug().
			Str("server", cfg.Server).
			Str("dns_name", cfg.DNSName).
			Int("port", cfg.Port).
			Msg("Retrieving certificate chain")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()

		var err error
		rawCerts, err = certload.GetCertsFromServer(ctx, cfg.Server, cfg.Port, cfg.Timeout())
		if err != nil {
			log.Error().Err(err).Msg("Error fetching certificate chain")
			plugin.AddError(err)
			plugin.ServiceOutput = fmt.Sprintf("%s: Error fetching certificates from port %d on %s", nagios.StateCRITICALLabel, cfg.Port, cfg.Server)
			plugin.ExitStatusCode = nagios.StateCRITICALExitCode
			return
		}

		certChainSource = fmt.Sprintf("service running on %s at port %d", cfg.Server, cfg.Port)
	}

	if len(rawCerts) == 0 {
		noCertsErr := errors.New("no certificates found")
		log.Error().Err(noCertsErr).Msg("No certificates found")
		plugin.AddError(noCertsErr)
		plugin.ServiceOutput = fmt.Sprintf("%s: 0 certificates found for %s", nagios.StateCRITICALLabel, certChainSource)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode
		return
	}

	defer func() {
		plugin.LongServiceOutput = fmt.Sprintf(
			"%d certs evaluated for %s%s%s",
			len(rawCerts),
			certChainSource,
			nagios.CheckOutputEOL,
			plugin.LongServiceOutput,
		)
	}()

	certChain := certload.WrapChain(rawCerts)

	checks := chain.DefaultChecks()
	checks.CheckExhaustive = cfg.Exhaustive
	checks.CheckStrictOrdering = cfg.StrictOrdering
	checks.CheckLeafV3 = cfg.RequireLeafV3

	params := chain.Params{Time: time.Now(), Hostname: cfg.DNSName}
	reasons := chain.ValidateWith(params, chain.DefaultHooks(), checks, store, certChain)

	leaf := rawCerts[0]
	daysToExpiration := int(time.Until(leaf.NotAfter).Hours() / 24)

	pd := []nagios.PerformanceData{
		{
			Label:             "expires_leaf",
			Value:             fmt.Sprintf("%d", daysToExpiration),
			UnitOfMeasurement: "d",
			Warn:              fmt.Sprintf("%d", cfg.AgeWarning),
			Crit:              fmt.Sprintf("%d", cfg.AgeCritical),
		},
		{
			Label: "chain_length",
			Value: fmt.Sprintf("%d", len(rawCerts)),
		},
		{
			Label: "validation_failures",
			Value: fmt.Sprintf("%d", len(reasons)),
		},
	}

	if err := plugin.AddPerfData(false, pd...); err != nil {
		log.Error().Err(err).Msg("failed to add performance data")
		plugin.AddError(err)
		plugin.ExitStatusCode = nagios.StateUNKNOWNExitCode
		plugin.ServiceOutput = fmt.Sprintf("%s: Failed to process performance data metrics", nagios.StateUNKNOWNLabel)
		return
	}

	switch {
	case len(reasons) > 0:
		for _, r := range reasons {
			plugin.AddError(fmt.Errorf("%s", r.String()))
		}

		plugin.ServiceOutput = fmt.Sprintf("%s: %d certificate chain validation failure(s)", nagios.StateCRITICALLabel, len(reasons))
		plugin.LongServiceOutput = reportLines(reasons)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

		log.Error().Int("failures", len(reasons)).Msg("certificate chain validation failed")

	case daysToExpiration <= cfg.AgeCritical:
		plugin.ServiceOutput = fmt.Sprintf("%s: leaf certificate expires in %d days", nagios.StateCRITICALLabel, daysToExpiration)
		plugin.ExitStatusCode = nagios.StateCRITICALExitCode

	case daysToExpiration <= cfg.AgeWarning:
		plugin.ServiceOutput = fmt.Sprintf("%s: leaf certificate expires in %d days", nagios.StateWARNINGLabel, daysToExpiration)
		plugin.ExitStatusCode = nagios.StateWARNINGExitCode

	default:
		plugin.ServiceOutput = fmt.Sprintf("%s: certificate chain valid, leaf expires in %d days", nagios.StateOKLabel, daysToExpiration)
		plugin.ExitStatusCode = nagios.StateOKExitCode

		log.Debug().Int("days_to_expiration", daysToExpiration).Msg("certificate chain passed validation")
	}
}

func reportLines(reasons []chain.FailureReason) string {
	var out string
	for _, r := range reasons {
		out += fmt.Sprintf("* %s%s", r.String(), nagios.CheckOutputEOL)
	}
	return out
}
