// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

// SignatureResult is the outcome of verifying that an issuer's public key
// produced a subject's signature.
type SignatureResult struct {
	Valid  bool
	Detail string
}

// SignatureVerifier is the external collaborator responsible for the
// cryptographic half of chain walking: given a subject certificate and the
// candidate issuer that signed it, report whether the signature checks
// out. The package starts with a permissive no-op verifier; the reference
// implementation in internal/signer, installed via SetSignatureVerifier,
// wraps (*x509.Certificate).CheckSignature with the legacy MD5/SHA1/ECDSA
// fallbacks the reference tooling carries for older deployed certificates.
type SignatureVerifier interface {
	VerifySignature(subject, issuer SignedCertificate) SignatureResult
}

// noopSignatureVerifier treats every signature as valid. It exists so the
// core package has a usable zero value and can be exercised in isolation
// from internal/signer; production callers install a real verifier via
// SetSignatureVerifier.
type noopSignatureVerifier struct{}

func (noopSignatureVerifier) VerifySignature(_, _ SignedCertificate) SignatureResult {
	return SignatureResult{Valid: true}
}

var signatureVerifier SignatureVerifier = noopSignatureVerifier{}

// SetSignatureVerifier installs the collaborator used by Validate and
// ValidateWith to check issuer/subject signatures. Passing nil restores
// the permissive no-op verifier.
func SetSignatureVerifier(v SignatureVerifier) {
	if v == nil {
		v = noopSignatureVerifier{}
	}
	signatureVerifier = v
}

// checkSignature asks the installed SignatureVerifier to confirm that
// issuer's key produced subject's signature, translating a negative result
// into an InvalidSignature FailureReason carrying the verifier's detail.
func checkSignature(subject, issuer SignedCertificate) []FailureReason {
	result := signatureVerifier.VerifySignature(subject, issuer)
	if result.Valid {
		return nil
	}
	return []FailureReason{reasonWith(InvalidSignature, result.Detail)}
}
