package parser

import "strings"

// BuildHeaderMap maps each header cell to a canonical field via the dialect's
// rule table. The first rule whose fragment is contained in the cell wins;
// header cells no rule matches are ignored, so coverage is sparse by design —
// not every source column has a canonical counterpart.
func BuildHeaderMap(header []string, d Dialect) HeaderMap {
	hm := make(HeaderMap)
	for idx, cell := range header {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		for _, rule := range d.Fields {
			if strings.Contains(cell, rule.Fragment) {
				hm[idx] = rule.Field
				break
			}
		}
	}
	return hm
}

// ProjectRow turns a raw row into a canonical-field → cell-text map using a
// previously built HeaderMap. Cells beyond the row's length and empty cells
// are dropped.
func ProjectRow(row []string, hm HeaderMap) map[string]string {
	fields := make(map[string]string, len(hm))
	for colIdx, field := range hm {
		if colIdx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[colIdx])
		if value == "" {
			continue
		}
		fields[field] = value
	}
	return fields
}
