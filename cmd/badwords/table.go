package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"badwords/internal/badwords"
	"badwords/internal/preflight"
)

// fileSummary is one row of the inspect table.
type fileSummary struct {
	label string
	file  badwords.File
	size  string
}

func (s fileSummary) row() table.Row {
	return table.Row{
		s.label,
		strconv.Itoa(len(s.file.BadWordsIDs)),
		strconv.Itoa(s.file.TokenCount()),
		strconv.Itoa(s.file.LongestSequence()),
		s.size,
	}
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderInspectTable lists each summary and, for more than one file, a
// footer with the merged totals.
func renderInspectTable(summaries []fileSummary) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"File", "Sequences", "Tokens", "Longest", "Size"})

	files := make([]badwords.File, 0, len(summaries))
	for _, s := range summaries {
		tw.AppendRow(s.row())
		files = append(files, s.file)
	}
	if len(summaries) > 1 {
		total := fileSummary{label: "total", file: badwords.Merge(files...)}
		tw.AppendFooter(total.row())
	}

	numeric := []table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	}
	tw.SetColumnConfigs(numeric)
	return tw.Render() + "\n"
}

// renderCheckTable shows readiness results with a pass/fail marker.
func renderCheckTable(results []preflight.Result) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})
	for _, r := range results {
		status := "ok"
		if !r.Passed {
			status = "FAIL"
		}
		tw.AppendRow(table.Row{r.Name, status, r.Detail})
	}
	return tw.Render() + "\n"
}
