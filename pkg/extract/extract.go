// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

// Package extract pulls string values out of a JSON object body by literal
// substring search. It is not a JSON parser: the first occurrence of
// "key":" wins and the value ends at the next double quote, escaped or not.
package extract

import (
	"strings"
	"unicode/utf8"
)

// MaxValueLen is the longest value Field returns, in bytes
const MaxValueLen = 127

// Field returns the value of key in text and whether it was found
func Field(text, key string) (string, bool) {
	pattern := `"` + key + `":"`

	start := strings.Index(text, pattern)
	if start < 0 {
		return "", false
	}
	start += len(pattern)

	end := strings.IndexByte(text[start:], '"')
	if end < 0 {
		return "", false
	}

	return truncate(text[start : start+end]), true
}

// Fields extracts several keys at once. Missing keys are absent from the map.
func Fields(text string, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := Field(text, key); ok {
			values[key] = v
		}
	}
	return values
}

// truncate cuts s to MaxValueLen bytes without splitting a multi-byte rune
func truncate(s string) string {
	if len(s) <= MaxValueLen {
		return s
	}
	cut := MaxValueLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
