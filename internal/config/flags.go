// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"flag"
	"fmt"
	"os"
)

// handleFlagsConfig registers the flags applicable to the given
// application type and parses the command line.
func (c *Config) handleFlagsConfig(appType AppType) {

	switch {
	case appType.Plugin:
		flag.BoolVar(&c.EmitBranding, BrandingFlag, defaultBranding, brandingFlagHelp)
	case appType.Inspecter:
		flag.BoolVar(&c.EmitCertText, EmitCertTextFlagLong, defaultEmitText, emitCertTextFlagHelp)
	}

	flag.StringVar(&c.Filename, FilenameFlagLong, defaultFilename, filenameFlagHelp)
	flag.StringVar(&c.Filename, FilenameFlagShort, defaultFilename, filenameFlagHelp+shorthandFlagSuffix)

	flag.StringVar(&c.Server, ServerFlagLong, defaultServer, serverFlagHelp)
	flag.StringVar(&c.Server, ServerFlagShort, defaultServer, serverFlagHelp+shorthandFlagSuffix)

	flag.StringVar(&c.DNSName, DNSNameFlagLong, defaultDNSName, dnsNameFlagHelp)
	flag.StringVar(&c.DNSName, DNSNameFlagShort, defaultDNSName, dnsNameFlagHelp+shorthandFlagSuffix)

	flag.IntVar(&c.Port, PortFlagLong, defaultPort, portFlagHelp)
	flag.IntVar(&c.Port, PortFlagShort, defaultPort, portFlagHelp+shorthandFlagSuffix)

	flag.StringVar(&c.CAFile, CAFileFlagLong, defaultCAFile, caFileFlagHelp)

	flag.IntVar(&c.timeout, TimeoutFlagLong, defaultTimeout, timeoutFlagHelp)
	flag.IntVar(&c.timeout, TimeoutFlagShort, defaultTimeout, timeoutFlagHelp+shorthandFlagSuffix)

	flag.IntVar(&c.AgeWarning, AgeWarningFlagLong, defaultCertExpireAgeWarning, certExpireAgeWarningFlagHelp)
	flag.IntVar(&c.AgeWarning, AgeWarningFlagShort, defaultCertExpireAgeWarning, certExpireAgeWarningFlagHelp+shorthandFlagSuffix)

	flag.IntVar(&c.AgeCritical, AgeCriticalFlagLong, defaultCertExpireAgeCritical, certExpireAgeCriticalFlagHelp)
	flag.IntVar(&c.AgeCritical, AgeCriticalFlagShort, defaultCertExpireAgeCritical, certExpireAgeCriticalFlagHelp+shorthandFlagSuffix)

	flag.BoolVar(&c.Exhaustive, ExhaustiveFlagLong, defaultExhaustive, exhaustiveFlagHelp)
	flag.BoolVar(&c.StrictOrdering, StrictOrderingFlagLong, defaultStrictOrdering, strictOrderingFlagHelp)
	flag.BoolVar(&c.RequireLeafV3, RequireLeafV3FlagLong, defaultRequireLeafV3, requireLeafV3FlagHelp)

	flag.StringVar(&c.LoggingLevel, LogLevelFlagLong, defaultLogLevel, logLevelFlagHelp)
	flag.StringVar(&c.LoggingLevel, LogLevelFlagShort, defaultLogLevel, logLevelFlagHelp+shorthandFlagSuffix)

	flag.BoolVar(&c.ShowVersion, VersionFlagLong, defaultShowVer, versionFlagHelp)
	flag.BoolVar(&c.ShowVersion, VersionFlagShort, defaultShowVer, versionFlagHelp+shorthandFlagSuffix)

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "\n"+Version()+"\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
}

// shorthandFlagSuffix is appended to short flag help text to emphasize
// that the flag is a shorthand version of a longer flag.
const shorthandFlagSuffix = " (shorthand)"
