package dateutil

import (
	"testing"
	"time"
)

func TestToDateOnly(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2026-03-10", want: "2026-03-10"},
		{name: "rfc3339 utc", input: "2026-03-10T15:04:05Z", want: "2026-03-10"},
		{name: "rfc3339 offset keeps its own calendar date", input: "2026-03-10T23:30:00+07:00", want: "2026-03-10"},
		{name: "garbage", input: "10/03/2026", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDateOnly(tt.input)
			if tt.wantErr {
				if err != ErrInvalidDate {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(DateFormat) != tt.want {
				t.Errorf("got %s, want %s", got.Format(DateFormat), tt.want)
			}
			if got.Location() != time.UTC || got.Hour() != 0 {
				t.Errorf("expected UTC midnight, got %v", got)
			}
		})
	}
}

func TestTruncateKeepsCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 23:30 local on March 10 is already March 10 14:30 UTC; the calendar
	// date the caller meant is still March 10.
	in := time.Date(2026, 3, 10, 23, 30, 0, 0, loc)

	got := Truncate(in)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNightsBetween(t *testing.T) {
	date := func(s string) time.Time {
		d, err := ToDateOnly(s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name    string
		in, out string
		want    int
		wantErr bool
	}{
		{name: "three nights", in: "2026-03-10", out: "2026-03-13", want: 3},
		{name: "single night", in: "2026-03-10", out: "2026-03-11", want: 1},
		{name: "across dst change", in: "2026-03-28", out: "2026-03-30", want: 2},
		{name: "same day", in: "2026-03-10", out: "2026-03-10", wantErr: true},
		{name: "reversed", in: "2026-03-13", out: "2026-03-10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NightsBetween(date(tt.in), date(tt.out))
			if tt.wantErr {
				if err != ErrInvalidRange {
					t.Fatalf("expected ErrInvalidRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d nights, want %d", got, tt.want)
			}
		})
	}
}
