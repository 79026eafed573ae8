// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

const myAppName string = "x509validator"
const myAppURL string = "https://github.com/chainwalk/x509validator"

// ExitCodeCatchall indicates a general or miscellaneous error has occurred.
// This exit code is not directly used by monitoring plugins in this
// project. See https://tldp.org/LDP/abs/html/exitcodes.html for additional
// details.
const ExitCodeCatchall int = 1

// Flag names, exported so that they're available from tests and from cmd
// packages building their own help text.
const (
	ServerFlagLong    string = "server"
	ServerFlagShort   string = "s"
	FilenameFlagLong  string = "filename"
	FilenameFlagShort string = "f"

	DNSNameFlagLong  string = "dns-name"
	DNSNameFlagShort string = "dn"

	PortFlagLong  string = "port"
	PortFlagShort string = "p"

	CAFileFlagLong string = "ca-file"

	TimeoutFlagLong  string = "timeout"
	TimeoutFlagShort string = "t"

	LogLevelFlagLong  string = "log-level"
	LogLevelFlagShort string = "ll"

	VersionFlagLong  string = "version"
	VersionFlagShort string = "v"

	BrandingFlag         string = "branding"
	EmitCertTextFlagLong string = "text"

	AgeWarningFlagLong  string = "age-warning"
	AgeWarningFlagShort string = "w"

	AgeCriticalFlagLong  string = "age-critical"
	AgeCriticalFlagShort string = "c"

	ExhaustiveFlagLong     string = "exhaustive"
	StrictOrderingFlagLong string = "strict-ordering"
	RequireLeafV3FlagLong  string = "require-leaf-v3"
)

// Flag help text.
const (
	versionFlagHelp  string = "Whether to display application version and then immediately exit application."
	serverFlagHelp   string = "The fully-qualified domain name or IP Address used for certificate chain retrieval. This value should appear in the Subject Alternate Names (SANs) list for the leaf certificate unless also using the " + DNSNameFlagLong + " flag."
	filenameFlagHelp string = "Fully-qualified path to a PEM or DER formatted certificate file containing the leaf certificate and any intermediates presented for validation."
	dnsNameFlagHelp  string = "The fully-qualified hostname checked against the leaf certificate's Common Name and Subject Alternate Names. Required when evaluating a certificate file; defaults to the " + ServerFlagLong + " value when retrieving a chain over the network."
	portFlagHelp     string = "TCP port of the remote certificate-enabled service. This is usually 443 (HTTPS) or 636 (LDAPS)."
	caFileFlagHelp   string = "Fully-qualified path to a PEM formatted file containing one or more trust anchors used to build the trust store consulted by the chain walker."
	timeoutFlagHelp  string = "Timeout value in seconds allowed before a connection attempt to a remote certificate-enabled service is abandoned and an error returned."
	logLevelFlagHelp string = "Sets log level to one of disabled, panic, fatal, error, warn, info, debug or trace."

	certExpireAgeWarningFlagHelp  string = "The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a WARNING state."
	certExpireAgeCriticalFlagHelp string = "The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a CRITICAL state."

	brandingFlagHelp     string = "Toggles emission of branding details with plugin status details. This output is disabled by default."
	emitCertTextFlagHelp string = "Toggles emission of the certificate chain in an OpenSSL-inspired text format plus a fingerprint summary. This output is disabled by default."

	exhaustiveFlagHelp     string = "Accumulate every validation defect instead of stopping at the first one."
	strictOrderingFlagHelp string = "Require the presented certificate chain to already be ordered leaf-to-root. Disabled by default to tolerate padded or reordered chains."
	requireLeafV3FlagHelp  string = "Require the leaf certificate to be encoded as X.509v3."
)

// Default flag settings if not overridden by user input.
const (
	defaultLogLevel string = "info"
	defaultServer   string = ""
	defaultDNSName  string = ""
	defaultFilename string = ""
	defaultCAFile   string = ""
	defaultPort     int    = 443
	defaultTimeout  int    = 10
	defaultBranding bool   = false
	defaultEmitText bool   = false
	defaultShowVer  bool   = false

	defaultExhaustive     bool = false
	defaultStrictOrdering bool = false
	defaultRequireLeafV3  bool = true

	// Default WARNING threshold is 30 days.
	defaultCertExpireAgeWarning int = 30

	// Default CRITICAL threshold is 15 days.
	defaultCertExpireAgeCritical int = 15
)
