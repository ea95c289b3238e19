package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestGetImplicitDateRange_year(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020", "2021", "2006")
}

func TestGetImplicitDateRange_month(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01", "2020-02", "2006-01")
}

func TestGetImplicitDateRange_day(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01-01", "2020-01-02", "2006-01-02")
}

func TestGetImplicitDateRange_invalid(t *testing.T) {
	tooMany := "2020-01-0123"
	_, _, err := getImplicitDateRange(tooMany)
	if err == nil {
		t.Fatalf("Expected error parsing %q", tooMany)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}

	letters := "not_real"
	_, _, err = getImplicitDateRange(letters)
	if err == nil {
		t.Fatalf("Expected error parsing %q", letters)
	}
	if !strings.Contains(err.Error(), "Invalid format") {
		t.Fatalf("Should have error with invalid format: %v", err)
	}
}

func doTestGetImplicitDateRange(t *testing.T, startString string, endString string, format string) {
	start, end, err := getImplicitDateRange(startString)
	if err != nil {
		t.Fatalf("Parsing date string: %v", err)
	}

	expectedStart, err := time.Parse(format, startString)
	if err != nil {
		t.Fatalf("Constructing expectedStart: %v", err)
	}

	expectedEnd, err := time.Parse(format, endString)
	if err != nil {
		t.Fatalf("Constructing expectedEnd: %v", err)
	}

	if start != expectedStart {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if end != expectedEnd {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetExplicitDateRange_valid(t *testing.T) {
	const startString = "2020"
	const endString = "2020-02-01"
	expectedStart, err := time.Parse("2006", startString)
	if err != nil {
		t.Fatalf("Constructing expectedStart: %v", err)
	}

	expectedEnd, err := time.Parse("2006-01-02", endString)
	if err != nil {
		t.Fatalf("Constructing expectedEnd: %v", err)
	}

	start, end, err := getExplicitDateRange(startString, endString)
	if err != nil {
		t.Fatalf("getExplicitDateRange(%q, %q): %v", startString, endString, err)
	}

	if start != expectedStart {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if end != expectedEnd {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetExplicitDateRange_invalid(t *testing.T) {
	_, _, err := getExplicitDateRange("2020", "abc")
	if err == nil {
		t.Fatalf("Expected error when parsing invalid datestring")
	}
}

func TestParseOptionalDateRange_empty(t *testing.T) {
	start, end, err := parseOptionalDateRange(nil)
	if err != nil {
		t.Fatalf("parseOptionalDateRange(nil): %v", err)
	}
	if start != nil || end != nil {
		t.Fatalf("Expected open-ended range, got %v and %v", start, end)
	}
}

func TestParseOptionalDateRange_single(t *testing.T) {
	start, end, err := parseOptionalDateRange([]string{"2020"})
	if err != nil {
		t.Fatalf("parseOptionalDateRange: %v", err)
	}
	if start == nil || end == nil {
		t.Fatalf("Expected both bounds, got %v and %v", start, end)
	}

	expectedStart, _ := time.Parse("2006", "2020")
	if !start.Equal(expectedStart) {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	// The end of the implied period is inclusive, so it must fall just
	// before the start of 2021.
	nextYear, _ := time.Parse("2006", "2021")
	if !end.Before(nextYear) {
		t.Fatalf("Expected end %q to be before %q", end, nextYear)
	}
	if nextYear.Sub(*end) > time.Second {
		t.Fatalf("Expected end %q to be just before %q", end, nextYear)
	}
}

func TestParseOptionalDateRange_tooMany(t *testing.T) {
	_, _, err := parseOptionalDateRange([]string{"2020", "2021", "2022"})
	if err == nil {
		t.Fatalf("Expected error for three date arguments")
	}
}
