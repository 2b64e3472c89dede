// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingedpig/getip/pkg/model"
)

func found(v string) model.Field {
	return model.Field{Value: v, Found: true}
}

func TestPrintLookup(t *testing.T) {
	res := &model.LookupResult{
		IP:      found("8.8.8.8"),
		Country: found("United States"),
		Region:  found("California"),
		City:    found("Mountain View"),
		ISP:     found("Google LLC"),
	}

	var out bytes.Buffer
	require.NoError(t, Print(&out, LookupRows(res), Options{}))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "┌───────────┬───────────────────────────┐", lines[0])
	assert.Equal(t, "│ IP        │ 8.8.8.8                   │", lines[1])
	assert.Equal(t, "│ Country   │ United States             │", lines[2])
	assert.Equal(t, "│ Region    │ California                │", lines[3])
	assert.Equal(t, "│ City      │ Mountain View             │", lines[4])
	assert.Equal(t, "│ ISP       │ Google LLC                │", lines[5])
	assert.Equal(t, "└───────────┴───────────────────────────┘", lines[6])
}

func TestPrintMissingField(t *testing.T) {
	res := &model.LookupResult{
		IP:      found("8.8.8.8"),
		Country: found("United States"),
		Region:  found("California"),
		City:    found("Mountain View"),
	}

	out := Render(LookupRows(res), Options{})
	assert.Contains(t, out, "│ ISP       │ "+model.NotFound)
}

func TestRenderLongValueNotCut(t *testing.T) {
	long := "Comcast Cable Communications, LLC"
	out := Render([]Row{{Label: "ISP", Value: found(long)}}, Options{})

	assert.Contains(t, out, long)
}

func TestRenderColor(t *testing.T) {
	rows := []Row{{Label: "IP", Value: found("1.1.1.1")}}

	plain := Render(rows, Options{})
	colored := Render(rows, Options{Color: true})

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[36m")
	assert.Contains(t, colored, "1.1.1.1")
}
