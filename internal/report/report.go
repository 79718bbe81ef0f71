package report

import (
	"github.com/mvelja/benchtab/internal/catalog"
)

// Report is the render-ready view of one benchmark type: display headers
// with units appended and one row per fetched benchmark.
type Report struct {
	Type    string   `json:"type"`
	FetchID string   `json:"fetch_id,omitempty"`
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

type Row struct {
	Cells  []string            `json:"cells"`
	Alarms map[string][]string `json:"alarms,omitempty"`
}

// Build normalizes catalog query output into a report. Cell order follows
// the schema header order; the Type column is not repeated per row.
func Build(typ string, entries []catalog.Entry, headers []string) *Report {
	r := &Report{
		Type:    typ,
		Headers: make([]string, 0, len(headers)),
		Rows:    make([]Row, 0, len(entries)),
	}
	for _, h := range headers {
		r.Headers = append(r.Headers, catalog.HeaderWithUnit(h))
	}

	for _, e := range entries {
		row := Row{Cells: make([]string, 0, len(headers))}
		for _, h := range headers {
			row.Cells = append(row.Cells, e.Record[h].String())
		}
		for h, uris := range e.Alarms {
			if len(uris) == 0 {
				continue
			}
			if row.Alarms == nil {
				row.Alarms = make(map[string][]string)
			}
			row.Alarms[h] = uris
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}
