package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("ParseDate = %v, want 2024-03-10", got)
	}

	if _, err := ParseDate("10/03/2024"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("ParseDate accepted an empty string")
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 10, 15, 42, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-03-10" {
		t.Errorf("FormatDate = %q, want %q", got, "2024-03-10")
	}
}

func TestTruncateToDate(t *testing.T) {
	ts := time.Date(2024, 3, 10, 15, 42, 13, 999, time.UTC)
	got := TruncateToDate(ts)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("TruncateToDate kept a time component: %v", got)
	}
	if got.Location() != ts.Location() {
		t.Error("TruncateToDate changed the location")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("ParseDuration = %v, want 90s", got)
	}
	if got := ParseDuration("not-a-duration", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
}
