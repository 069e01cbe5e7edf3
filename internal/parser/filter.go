package parser

import "strings"

// IsBlankRow reports whether every cell is empty or whitespace-only.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// HasMandatory is the sole gate a projected row must pass to become a record:
// every mandatory field of the active dialect must be non-empty after mapping.
// Type-correctness of optional fields is the normalizers' concern, and they
// degrade instead of failing.
func HasMandatory(fields map[string]string, mandatory []string) bool {
	for _, field := range mandatory {
		if strings.TrimSpace(fields[field]) == "" {
			return false
		}
	}
	return true
}
