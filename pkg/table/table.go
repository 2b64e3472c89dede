// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package table

import (
	"fmt"
	"io"

	pretty "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/wingedpig/getip/pkg/model"
)

const (
	LabelWidth = 9
	ValueWidth = 25
)

// Row is one labelled line of the table
type Row struct {
	Label string
	Value model.Field
}

// Options controls rendering
type Options struct {
	Color bool // Color labels cyan
}

// Print writes rows as a bordered two-column table
func Print(w io.Writer, rows []Row, opts Options) error {
	_, err := fmt.Fprintln(w, Render(rows, opts))
	return err
}

// Render returns the table without a trailing newline
func Render(rows []Row, opts Options) string {
	t := pretty.NewWriter()
	t.SetStyle(pretty.StyleLight)

	labels := pretty.ColumnConfig{Number: 1, WidthMin: LabelWidth}
	if opts.Color {
		labels.Colors = text.Colors{text.FgCyan}
	}
	t.SetColumnConfigs([]pretty.ColumnConfig{
		labels,
		{Number: 2, WidthMin: ValueWidth},
	})

	for _, row := range rows {
		t.AppendRow(pretty.Row{row.Label, row.Value.String()})
	}

	return t.Render()
}

// LookupRows arranges a lookup result in display order
func LookupRows(res *model.LookupResult) []Row {
	return []Row{
		{Label: "IP", Value: res.IP},
		{Label: "Country", Value: res.Country},
		{Label: "Region", Value: res.Region},
		{Label: "City", Value: res.City},
		{Label: "ISP", Value: res.ISP},
	}
}
