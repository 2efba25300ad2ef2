package parser

import "testing"

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"30", 30, false},
		{"7", 7, false},
		{"30d", 30, false},
		{"4w", 28, false},
		{"7 days", 7, false},
		{"1 day", 1, false},
		{"2 weeks", 14, false},
		{"1 week", 7, false},
		{" 10d ", 10, false},
		{"2W", 14, false},
		{"", 0, true},
		{"0", 0, true},
		{"366", 0, true},
		{"53w", 0, true},
		{"soon", 0, true},
		{"-5", 0, true},
		{"5 months", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseWindow(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q, got %d", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseWindow(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}
