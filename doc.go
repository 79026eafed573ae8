/*

This repo contains an X.509 certificate chain validator built around an
RFC 5280-conformant chain-building and verification state machine, plus
two CLI tools built on top of it.

PROJECT HOME

See our GitHub repo (https://github.com/chainwalk/x509validator) for the
latest code, to file an issue or submit improvements for review and
potential inclusion into the project.

PURPOSE

Given a presented certificate chain, a trust store of anchors, a target
hostname and a validation timestamp, decide whether the chain is
acceptable and enumerate every reason it is not, in either fail-fast or
exhaustive mode.

FEATURES

• Nagios-style plugin for monitoring the certificate chain of a
certificate-enabled service or a certificate file

• Standalone inspector CLI for dumping a certificate chain in an
OpenSSL-inspired text format and as a structured validation payload

• Chain walker tolerant of padded or out-of-order presented chains, with
an opt-in strict-ordering mode

• Exhaustive mode that accumulates every validation defect instead of
stopping at the first one

USAGE - x509validate Nagios plugin

    x509validator x.y.z (https://github.com/chainwalk/x509validator)

    Usage of x509validate:
    -age-critical int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a CRITICAL state. (default 15)
    -age-warning int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a WARNING state. (default 30)
    -branding
            Toggles emission of branding details with plugin status details. This output is disabled by default.
    -c int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a CRITICAL state. (shorthand) (default 15)
    -ca-file string
            Fully-qualified path to a PEM formatted file containing one or more trust anchors used to build the trust store consulted by the chain walker.
    -dn string
            The fully-qualified hostname checked against the leaf certificate's Common Name and Subject Alternate Names. Required when evaluating a certificate file; defaults to the server value when retrieving a chain over the network. (shorthand)
    -dns-name string
            The fully-qualified hostname checked against the leaf certificate's Common Name and Subject Alternate Names. Required when evaluating a certificate file; defaults to the server value when retrieving a chain over the network.
    -exhaustive
            Accumulate every validation defect instead of stopping at the first one.
    -f string
            Fully-qualified path to a PEM or DER formatted certificate file containing the leaf certificate and any intermediates presented for validation. (shorthand)
    -filename string
            Fully-qualified path to a PEM or DER formatted certificate file containing the leaf certificate and any intermediates presented for validation.
    -ll string
            Sets log level to one of disabled, panic, fatal, error, warn, info, debug or trace. (shorthand) (default "info")
    -log-level string
            Sets log level to one of disabled, panic, fatal, error, warn, info, debug or trace. (default "info")
    -p int
            TCP port of the remote certificate-enabled service. This is usually 443 (HTTPS) or 636 (LDAPS). (shorthand) (default 443)
    -port int
            TCP port of the remote certificate-enabled service. This is usually 443 (HTTPS) or 636 (LDAPS). (default 443)
    -require-leaf-v3
            Require the leaf certificate to be encoded as X.509v3. (default true)
    -s string
            The fully-qualified domain name or IP Address used for certificate chain retrieval. This value should appear in the Subject Alternate Names (SANs) list for the leaf certificate unless also using the dns-name flag. (shorthand)
    -server string
            The fully-qualified domain name or IP Address used for certificate chain retrieval. This value should appear in the Subject Alternate Names (SANs) list for the leaf certificate unless also using the dns-name flag.
    -strict-ordering
            Require the presented certificate chain to already be ordered leaf-to-root. Disabled by default to tolerate padded or reordered chains.
    -t int
            Timeout value in seconds allowed before a connection attempt to a remote certificate-enabled service is abandoned and an error returned. (shorthand) (default 10)
    -timeout int
            Timeout value in seconds allowed before a connection attempt to a remote certificate-enabled service is abandoned and an error returned. (default 10)
    -v    Whether to display application version and then immediately exit application. (shorthand)
    -version
            Whether to display application version and then immediately exit application.
    -w int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a WARNING state. (shorthand) (default 30)

USAGE - x509chaindump inspector CLI

    x509validator x.y.z (https://github.com/chainwalk/x509validator)

    Usage of x509chaindump:
    -age-critical int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a CRITICAL state. (default 15)
    -age-warning int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a WARNING state. (default 30)
    -c int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a CRITICAL state. (shorthand) (default 15)
    -ca-file string
            Fully-qualified path to a PEM formatted file containing one or more trust anchors used to build the trust store consulted by the chain walker.
    -dn string
            The fully-qualified hostname checked against the leaf certificate's Common Name and Subject Alternate Names. Required when evaluating a certificate file; defaults to the server value when retrieving a chain over the network. (shorthand)
    -dns-name string
            The fully-qualified hostname checked against the leaf certificate's Common Name and Subject Alternate Names. Required when evaluating a certificate file; defaults to the server value when retrieving a chain over the network.
    -exhaustive
            Accumulate every validation defect instead of stopping at the first one.
    -f string
            Fully-qualified path to a PEM or DER formatted certificate file containing the leaf certificate and any intermediates presented for validation. (shorthand)
    -filename string
            Fully-qualified path to a PEM or DER formatted certificate file containing the leaf certificate and any intermediates presented for validation.
    -ll string
            Sets log level to one of disabled, panic, fatal, error, warn, info, debug or trace. (shorthand) (default "info")
    -log-level string
            Sets log level to one of disabled, panic, fatal, error, warn, info, debug or trace. (default "info")
    -p int
            TCP port of the remote certificate-enabled service. This is usually 443 (HTTPS) or 636 (LDAPS). (shorthand) (default 443)
    -port int
            TCP port of the remote certificate-enabled service. This is usually 443 (HTTPS) or 636 (LDAPS). (default 443)
    -require-leaf-v3
            Require the leaf certificate to be encoded as X.509v3. (default true)
    -s string
            The fully-qualified domain name or IP Address used for certificate chain retrieval. This value should appear in the Subject Alternate Names (SANs) list for the leaf certificate unless also using the dns-name flag. (shorthand)
    -server string
            The fully-qualified domain name or IP Address used for certificate chain retrieval. This value should appear in the Subject Alternate Names (SANs) list for the leaf certificate unless also using the dns-name flag.
    -strict-ordering
            Require the presented certificate chain to already be ordered leaf-to-root. Disabled by default to tolerate padded or reordered chains.
    -t int
            Timeout value in seconds allowed before a connection attempt to a remote certificate-enabled service is abandoned and an error returned. (shorthand) (default 10)
    -text
            Toggles emission of the certificate chain in an OpenSSL-inspired text format plus a fingerprint summary. This output is disabled by default.
    -timeout int
            Timeout value in seconds allowed before a connection attempt to a remote certificate-enabled service is abandoned and an error returned. (default 10)
    -v    Whether to display application version and then immediately exit application. (shorthand)
    -version
            Whether to display application version and then immediately exit application.
    -w int
            The number of days remaining before certificate expiration when this application will flag the NotAfter certificate field as a WARNING state. (shorthand) (default 30)

*/
package main
