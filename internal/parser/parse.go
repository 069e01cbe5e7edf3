package parser

import "fmt"

// ParseSheet runs the full normalization pipeline for one dialect: locate the
// header row, build the column map, then filter and normalize the data rows
// below it. The two failure modes here are the run's only structural errors;
// everything past them degrades per row instead of aborting.
func ParseSheet(sheet RawSheet, d Dialect) ([]Record, error) {
	headerIdx, err := LocateHeader(sheet, d.HeaderTokens)
	if err != nil {
		return nil, err
	}

	hm := BuildHeaderMap(sheet[headerIdx], d)

	var records []Record
	for _, row := range sheet[headerIdx+1:] {
		if IsBlankRow(row) {
			continue
		}
		fields := ProjectRow(row, hm)
		if !HasMandatory(fields, d.Mandatory) {
			continue
		}
		records = append(records, normalizeRecord(fields, d))
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no valid data rows", d.Name)
	}
	return records, nil
}

// normalizeRecord applies the cell normalizers to a projected row. The
// normalization layer is total: it converts what it recognizes and passes the
// rest through untouched.
func normalizeRecord(fields map[string]string, d Dialect) Record {
	record := make(Record, len(fields)+3)
	for field, value := range fields {
		record[field] = value
	}

	for _, field := range d.IntFields {
		if value, ok := fields[field]; ok {
			record[field] = parseInt(value)
		}
	}

	if day, ok := fields[FieldDayOfWeek]; ok {
		record[FieldDayConverted] = ConvertDayCode(day)
	}
	if span, ok := fields[FieldStudyTime]; ok {
		start, end := ParseTimeRange(span)
		record[FieldStudyTimeStart] = start
		record[FieldStudyTimeEnd] = end
	}
	if weeks, ok := fields[FieldStudyWeeks]; ok {
		record[FieldStudyWeeks] = ParseWeekList(weeks)
	}

	return record
}

// Str returns the record's string value for a field, or "" when absent or of
// another type.
func (r Record) Str(field string) string {
	s, _ := r[field].(string)
	return s
}

// Int returns the record's int value for a field, or 0.
func (r Record) Int(field string) int {
	i, _ := r[field].(int)
	return i
}

// Weeks returns the record's week list, or nil.
func (r Record) Weeks() []int {
	w, _ := r[FieldStudyWeeks].([]int)
	return w
}
