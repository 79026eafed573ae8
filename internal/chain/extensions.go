// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

// checkExtensions flags any critical extension the underlying X.509
// parser could not interpret. RFC 5280 requires that a certificate be
// rejected if a critical extension is not recognized and processed;
// go-x509 surfaces these as UnhandledCriticalExtensions rather than
// failing to parse, so this package is responsible for the rejection.
func checkExtensions(cert Certificate) []FailureReason {
	unhandled := cert.UnhandledCriticalExtensions()
	if len(unhandled) == 0 {
		return nil
	}
	return []FailureReason{reasonWith(UnknownCriticalExtension, unhandled[0].String())}
}
