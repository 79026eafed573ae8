// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

/*
Package chain implements RFC 5280 / RFC 6818 certificate chain validation.

Given a presented certificate chain, a trust store of anchors, a target
hostname and a validation instant, this package decides whether the chain is
acceptable and enumerates every reason it is not.

The interesting part of this package is the chain-building and verification
state machine: reconstructing a path from leaf to a trusted anchor across
possibly-unordered and possibly-padded chains, enforcing CA constraints layer
by layer, verifying cryptographic signatures between adjacent certificates,
applying leaf-specific policy (hostname match, key-usage intersection,
version gate), and doing so in two modes: fail-fast (stop on the first
defect) and exhaustive (accumulate every defect).

ASN.1/DER decoding of certificates, cryptographic signature primitives and
trust-store indexing are external collaborators reached through the
Certificate, SignedCertificate, CertificateStore and SignatureVerifier
interfaces; this package never parses a certificate itself.
*/
package chain
