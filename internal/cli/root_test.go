package cli

import (
	"testing"
	"time"
)

func TestParseWarningPeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "48", want: 48 * time.Hour},
		{input: "0", want: 0},
		{input: "36h", want: 36 * time.Hour},
		{input: "1h30m", want: 90 * time.Minute},
		{input: " 24 ", want: 24 * time.Hour},
		{input: "-2", wantErr: true},
		{input: "-2h", wantErr: true},
		{input: "", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWarningPeriod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWarningPeriod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseWarningPeriod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeadline(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		got, err := ParseDeadline("2026-09-10")
		if err != nil {
			t.Fatalf("ParseDeadline() error = %v", err)
		}
		want := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("ParseDeadline() = %v, want %v", got, want)
		}
	})

	t.Run("date with time", func(t *testing.T) {
		got, err := ParseDeadline("2026-09-10 14:30")
		if err != nil {
			t.Fatalf("ParseDeadline() error = %v", err)
		}
		want := time.Date(2026, 9, 10, 14, 30, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("ParseDeadline() = %v, want %v", got, want)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := ParseDeadline("next tuesday"); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestParseStringSet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple list", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trims and dedupes", input: " a , b ,a", want: []string{"a", "b"}},
		{name: "skips empties", input: "a,,b,", want: []string{"a", "b"}},
		{name: "blank input", input: "  ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStringSet(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStringSet(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStringSet(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0m"},
		{d: 25 * time.Minute, want: "25m"},
		{d: time.Hour, want: "1h00m"},
		{d: 2*time.Hour + 15*time.Minute, want: "2h15m"},
		{d: 90*time.Minute + 29*time.Second, want: "1h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "url with password",
			in:   "postgres://user:secret@db:5432/tally",
			want: "postgres://user:****@db:5432/tally",
		},
		{
			name: "url without password",
			in:   "postgres://user@db:5432/tally",
			want: "postgres://user@db:5432/tally",
		},
		{
			name: "dsn with password",
			in:   "host=db user=u password=secret dbname=tally",
			want: "host=db user=u password=**** dbname=tally",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskPassword(tt.in); got != tt.want {
				t.Errorf("maskPassword(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
