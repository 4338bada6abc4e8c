package networth

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2025-09-01", NewDate(2025, 9, 1), true},
		{"2025-9-1", NewDate(2025, 9, 1), true}, // lenient single digits
		{"not-a-date", Date{}, false},
		{"", Date{}, false},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDate(%q) error = %v, ok %v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate_AddMonth(t *testing.T) {
	if got, want := NewDate(2025, 11, 30).AddMonth(3), NewDate(2026, 3, 2); got != want {
		// Normalized like time.Date: Feb 30 rolls over.
		t.Errorf("AddMonth(3) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, 1, 15).AddMonth(-1), NewDate(2024, 12, 15); got != want {
		t.Errorf("AddMonth(-1) = %v, want %v", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, 9, 1)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2025-09-01"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
