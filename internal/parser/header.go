package parser

import (
	"fmt"
	"strings"
)

// LocateHeader scans rows from the top and returns the index of the first row
// whose cells collectively contain every required token as a case-sensitive
// substring. Exports carry a variable number of title rows above the real
// header, and the header text itself drifts between export runs (extra
// whitespace, trailing colons), so containment is deliberate.
func LocateHeader(sheet RawSheet, tokens []string) (int, error) {
	for idx, row := range sheet {
		if rowCoversTokens(row, tokens) {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("header not found: no row contains %q", firstUncovered(sheet, tokens))
}

// rowCoversTokens reports whether every token appears in at least one cell of
// the row. Tokens may be satisfied by different cells, but all must be
// satisfied on the same row.
func rowCoversTokens(row []string, tokens []string) bool {
	for _, token := range tokens {
		found := false
		for _, cell := range row {
			if strings.Contains(cell, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// firstUncovered names a token that no row satisfies together with the rest,
// so the error points at the actual missing requirement.
func firstUncovered(sheet RawSheet, tokens []string) string {
	for _, token := range tokens {
		covered := false
		for _, row := range sheet {
			for _, cell := range row {
				if strings.Contains(cell, token) {
					covered = true
					break
				}
			}
			if covered {
				break
			}
		}
		if !covered {
			return token
		}
	}
	// Every token appears somewhere, just never all on one row.
	if len(tokens) > 0 {
		return tokens[0]
	}
	return ""
}
