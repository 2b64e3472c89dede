// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package model

const (
	DefaultBaseURL   = "http://ip-api.com/json/"
	DefaultUserAgent = "get-ip-tool/1.0"

	// ip-api.com free tier allows 45 requests per minute from one address
	DefaultRateLimit = 45.0 / 60.0

	DefaultMaxResponseSize = 1 << 20
)

// Config contains configuration for a lookup run
type Config struct {
	BaseURL         string  // Endpoint prefix; the address is appended verbatim
	UserAgent       string  // Sent on every request
	RateLimit       float64 // Requests per second (0 = no limit)
	MaxResponseSize int     // Upper bound for the buffered response body
}

// DefaultConfig returns the configuration used by the CLI
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		UserAgent:       DefaultUserAgent,
		RateLimit:       DefaultRateLimit,
		MaxResponseSize: DefaultMaxResponseSize,
	}
}

// Field is a value extracted from a response body
type Field struct {
	Value string
	Found bool
}

// String returns the value, or the placeholder when the field was absent
func (f Field) String() string {
	if !f.Found {
		return NotFound
	}
	return f.Value
}

// NotFound is printed in place of a missing field
const NotFound = "not found"

// LookupResult is the output of a single geolocation query
type LookupResult struct {
	IP      Field // "query"
	Country Field // "country"
	Region  Field // "regionName"
	City    Field // "city"
	ISP     Field // "isp"

	Status  Field // "status": success/fail
	Message Field // "message": reason when status is fail
}

// Failed reports whether the service answered with status "fail"
func (r *LookupResult) Failed() bool {
	return r.Status.Found && r.Status.Value == "fail"
}

// Error types
type Error string

const (
	ErrUsage            Error = "invalid arguments"
	ErrClientInit       Error = "client initialization failed"
	ErrTransfer         Error = "transfer failed"
	ErrResponseTooLarge Error = "response exceeds buffer limit"
)

func (e Error) Error() string {
	return string(e)
}
