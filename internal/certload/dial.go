// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package certload

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrNoCertsReturned indicates that a TLS handshake completed without the
// peer presenting any certificates, which should not normally happen but is
// guarded against explicitly rather than trusting the server.
var ErrNoCertsReturned = errors.New("no certificates returned by remote server")

// GetCertsFromServer connects to server (a bare host name or IP address,
// joined with port via net.JoinHostPort) and returns the certificate chain
// presented during the TLS handshake.
// TLS verification is intentionally disabled at the connection layer
// (InsecureSkipVerify) so that expired, self-signed, or otherwise invalid
// chains can still be retrieved and evaluated by internal/chain rather than
// being rejected before this tool has a chance to report on them.
func GetCertsFromServer(ctx context.Context, server string, port int, timeout time.Duration) ([]*x509.Certificate, error) {
	dialer := &net.Dialer{Timeout: timeout}

	address := net.JoinHostPort(server, fmt.Sprintf("%d", port))

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true, //nolint:gosec
		ServerName:         server,
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", address, tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server %s: %w", address, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	certChain := conn.ConnectionState().PeerCertificates
	if len(certChain) == 0 {
		return nil, ErrNoCertsReturned
	}

	return certChain, nil
}
