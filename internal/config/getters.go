// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import "time"

// Timeout converts the user-specified connection timeout value in seconds
// to an appropriate time duration value for use with setting net.Dial
// timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.timeout) * time.Second
}

// AgeWarningThreshold converts AgeWarning (in days) to a time.Duration
// suitable for comparison against time remaining until a certificate's
// NotAfter.
func (c Config) AgeWarningThreshold() time.Duration {
	return time.Duration(c.AgeWarning) * 24 * time.Hour
}

// AgeCriticalThreshold converts AgeCritical (in days) to a time.Duration
// suitable for comparison against time remaining until a certificate's
// NotAfter.
func (c Config) AgeCriticalThreshold() time.Duration {
	return time.Duration(c.AgeCritical) * 24 * time.Hour
}
