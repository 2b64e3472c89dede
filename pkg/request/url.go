// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package request

import (
	"github.com/wingedpig/getip/pkg/model"
)

const (
	// MaxURLLen is the longest URL Build will produce
	MaxURLLen = 255

	// IPFlag selects an explicit address
	IPFlag = "-ip"
)

// Build creates the target URL from the base endpoint and the command line
// arguments (program name excluded).
//
// No arguments yields base unchanged. Exactly ["-ip", addr] yields base
// followed by addr with nothing in between. Any other shape returns
// model.ErrUsage. A URL longer than MaxURLLen is truncated.
func Build(base string, args []string) (string, error) {
	switch {
	case len(args) == 0:
		return bound(base), nil
	case len(args) == 2 && args[0] == IPFlag:
		return bound(base + args[1]), nil
	default:
		return "", model.ErrUsage
	}
}

func bound(url string) string {
	if len(url) > MaxURLLen {
		return url[:MaxURLLen]
	}
	return url
}
