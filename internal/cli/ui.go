// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/retr0h/caregate/internal/audit"
)

// Theme colors for terminal UI rendering.
var (
	Purple = lipgloss.Color("99")
	Gray   = lipgloss.Color("245")
	White  = lipgloss.Color("15")
	Teal   = lipgloss.Color("#06ffa5")
	Red    = lipgloss.Color("203")
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
	// ErrorStyle highlights failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(Red)
)

// Section is a titled table.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// compactMaxColWidth is the maximum column width before truncation.
const compactMaxColWidth = 50

// PrintCompactTable renders column-aligned tables with uppercase headers
// and alternating row colors. Multi-line cells are flattened and long
// cells are truncated with an ellipsis.
func PrintCompactTable(
	w io.Writer,
	sections []Section,
) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(Purple)
	evenStyle := lipgloss.NewStyle().Foreground(Teal)
	oddStyle := lipgloss.NewStyle().Foreground(White)

	const colGap = 2

	for _, section := range sections {
		if section.Title != "" {
			_, _ = fmt.Fprintf(w, "\n  %s:\n", headerStyle.Render(section.Title))
		} else {
			_, _ = fmt.Fprintln(w)
		}

		flatRows := make([][]string, len(section.Rows))
		for r, row := range section.Rows {
			flat := make([]string, len(row))
			for c, cell := range row {
				flat[c] = strings.Join(strings.Fields(cell), " ")
			}
			flatRows[r] = flat
		}

		widths := columnWidths(section.Headers, flatRows)

		var hdr strings.Builder
		hdr.WriteString("  ")
		for i, h := range section.Headers {
			hdr.WriteString(headerStyle.Render(pad(strings.ToUpper(h), widths[i]+colGap, i, len(section.Headers))))
		}
		_, _ = fmt.Fprintln(w, hdr.String())

		for r, row := range flatRows {
			rowStyle := evenStyle
			if r%2 != 0 {
				rowStyle = oddStyle
			}

			var line strings.Builder
			line.WriteString("  ")
			for i := range section.Headers {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				if len(cell) > widths[i] {
					cell = cell[:widths[i]-1] + "…"
				}
				line.WriteString(rowStyle.Render(pad(cell, widths[i]+colGap, i, len(section.Headers))))
			}
			_, _ = fmt.Fprintln(w, line.String())
		}
	}
}

func columnWidths(
	headers []string,
	rows [][]string,
) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], compactMaxColWidth)
	}

	return widths
}

// pad left-aligns s in width, except in the last column.
func pad(
	s string,
	width int,
	col int,
	cols int,
) string {
	if col == cols-1 {
		return s
	}

	return fmt.Sprintf("%-*s", width, s)
}

// KVMinColWidth is the minimum visual width for each key-value column.
const KVMinColWidth = 20

// PrintKV prints labeled key-value pairs on a single indented line.
// Arguments alternate between labels and values.
func PrintKV(
	w io.Writer,
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		maxWidth = max(maxWidth, lipgloss.Width(pair))
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			line.WriteString(strings.Repeat(" ", maxWidth-lipgloss.Width(pair)+4))
		}
	}
	_, _ = fmt.Fprintln(w, line.String())
}

// FormatAge formats a duration as "3d 4h", "12h 30m", "45m" or "30s".
func FormatAge(
	d time.Duration,
) string {
	if d <= 0 {
		return ""
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// FormatList joins list, or returns "None" when it is empty.
func FormatList(
	list []string,
) string {
	if len(list) == 0 {
		return "None"
	}

	return strings.Join(list, ", ")
}

// FormatMetadata formats a map as "key=value, key=value" sorted by key.
func FormatMetadata(
	metadata map[string]string,
) string {
	if len(metadata) == 0 {
		return ""
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+metadata[k])
	}

	return strings.Join(parts, ", ")
}

// AuditSection builds the audit list table.
func AuditSection(
	entries []audit.Entry,
	total int,
) Section {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		target := e.Request.Path
		if target == "" {
			target = strings.TrimSuffix(e.Request.ResourceType+"/"+e.Request.ResourceID, "/")
		}

		rows = append(rows, []string{
			e.ID,
			e.Timestamp.Format(time.RFC3339),
			string(e.Action),
			e.Request.Method,
			target,
			strconv.Itoa(e.Outcome.StatusCode),
			e.Actor.UserID,
			strconv.FormatBool(e.Sensitivity.TouchesSensitiveResource),
		})
	}

	return Section{
		Title:   fmt.Sprintf("Audit Entries (%d of %d)", len(entries), total),
		Headers: []string{"ID", "TIME", "ACTION", "METHOD", "TARGET", "STATUS", "USER", "PHI"},
		Rows:    rows,
	}
}

// PrintAuditEntry displays one audit entry in detail.
func PrintAuditEntry(
	w io.Writer,
	e audit.Entry,
) {
	_, _ = fmt.Fprintln(w)
	PrintKV(w, "ID", e.ID, "Time", e.Timestamp.Format(time.RFC3339))
	PrintKV(w, "Action", string(e.Action), "Status", strconv.Itoa(e.Outcome.StatusCode))
	PrintKV(w, "User", e.Actor.UserID, "Role", string(e.Actor.Role))
	if e.Request.Method != "" {
		PrintKV(w, "Method", e.Request.Method, "Path", e.Request.Path)
	}
	PrintKV(w, "Resource", e.Request.ResourceType, "Resource ID", e.Request.ResourceID)
	PrintKV(w, "IP", e.Network.IPAddress, "Latency", fmt.Sprintf("%dms", e.LatencyMs))
	PrintKV(w, "PHI", strconv.FormatBool(e.Sensitivity.TouchesSensitiveResource))
	PrintKV(w, "Sensitive Fields", FormatList(e.Sensitivity.SensitiveFieldNames))
	if meta := FormatMetadata(e.Metadata); meta != "" {
		PrintKV(w, "Metadata", meta)
	}
	if e.Outcome.ErrorMessage != "" {
		_, _ = fmt.Fprintln(w, "  "+ErrorStyle.Render("Error: "+e.Outcome.ErrorMessage))
	}
}
