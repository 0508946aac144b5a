package networth

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDateNormalizes(t *testing.T) {
	// Out-of-range day values roll over like time.Date.
	d := NewDate(2025, time.January, 32)
	if got, want := d.String(), "2025-02-01"; got != want {
		t.Errorf("NewDate(2025, 1, 32) = %s, want %s", got, want)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-15", want: "2025-07-15"},
		{in: "2025-7-1", want: "2025-07-01"},
		{in: " 2025-07-15 ", want: "2025-07-15"},
		{in: "2025/07/15", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %s, want error", tc.in, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if d.String() != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, d, tc.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %s before %s", a, b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare mismatch for %s and %s", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %s after %s", b, a)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 31)
	buf, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `"2025-12-31"`; got != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDateIsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
	if NewDate(2025, time.January, 1).IsZero() {
		t.Error("real date should not be zero")
	}
}
