package parser

import (
	"reflect"
	"testing"
)

func TestParseWeekList_RangesAndSingles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []int
	}{
		{"1-3,5", []int{1, 2, 3, 5}},
		{"5,1-3", []int{1, 2, 3, 5}},
		{"1,1,2-3,3", []int{1, 2, 3}},
		{"", []int{}},
		{"abc", []int{}},
		{"1-3,x,7", []int{1, 2, 3, 7}},
		{"10-12", []int{10, 11, 12}},
		{"3-1", []int{}},
	}

	for _, tc := range cases {
		if got := ParseWeekList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseWeekList(%q) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestParseTimeRange_FourDigitGate(t *testing.T) {
	t.Parallel()

	start, end := ParseTimeRange("0900-1050")
	if start != "09:00" || end != "10:50" {
		t.Fatalf("unexpected range: %q %q", start, end)
	}

	// 3-digit left side is returned unchanged, not reformatted.
	start, end = ParseTimeRange("900-1050")
	if start != "900" || end != "10:50" {
		t.Fatalf("unexpected range: %q %q", start, end)
	}

	start, end = ParseTimeRange("")
	if start != "" || end != "" {
		t.Fatalf("empty input should yield empty sides, got %q %q", start, end)
	}

	start, end = ParseTimeRange("0900")
	if start != "" || end != "" {
		t.Fatalf("missing separator should yield empty sides, got %q %q", start, end)
	}
}

func TestConvertDayCode(t *testing.T) {
	t.Parallel()

	if got := ConvertDayCode("2"); got != "Monday" {
		t.Fatalf("2 want=Monday got=%q", got)
	}
	if got := ConvertDayCode("8"); got != "Sunday" {
		t.Fatalf("8 want=Sunday got=%q", got)
	}
	// Already-named days pass through unchanged.
	if got := ConvertDayCode("Monday"); got != "Monday" {
		t.Fatalf("Monday want=Monday got=%q", got)
	}
	if got := ConvertDayCode("9"); got != "9" {
		t.Fatalf("unknown code should pass through, got %q", got)
	}
}
