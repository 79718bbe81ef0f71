package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

// WriteTable renders one benchmark-type report as an aligned text table,
// followed by the console links of any firing alarms.
func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== %s Benchmarks ===\n\n", r.Type)

	fmt.Fprintln(tw, strings.Join(r.Headers, "\t"))

	sep := make([]string, len(r.Headers))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range r.Rows {
		fmt.Fprintln(tw, strings.Join(row.Cells, "\t"))
	}
	fmt.Fprintln(tw)

	writeAlarms(tw, r)
	tw.Flush()
}

func writeAlarms(tw *tabwriter.Writer, r *Report) {
	found := false
	for i, row := range r.Rows {
		if len(row.Alarms) == 0 {
			continue
		}
		if !found {
			fmt.Fprintf(tw, "--- Firing Alarms ---\n\n")
			found = true
		}

		headers := make([]string, 0, len(row.Alarms))
		for h := range row.Alarms {
			headers = append(headers, h)
		}
		sort.Strings(headers)

		for _, h := range headers {
			for _, uri := range row.Alarms[h] {
				fmt.Fprintf(tw, "row %d\t%s\t%s\n", i+1, h, uri)
			}
		}
	}
	if found {
		fmt.Fprintln(tw)
	}
}
