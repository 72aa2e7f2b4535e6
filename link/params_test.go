package link

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseArgs(t *testing.T) {
	got, err := ParseArgs([]string{"20", "20", "2.4e9", "1", "15", "1e-20", "1e6"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got != wifiLink {
		t.Fatalf("ParseArgs = %+v, want %+v", got, wifiLink)
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		param string
		want  error
	}{
		{"no values", nil, "", ErrArgCount},
		{"too few", []string{"20", "20", "2.4e9", "1", "15", "1e-20"}, "", ErrArgCount},
		{"too many", []string{"20", "20", "2.4e9", "1", "15", "1e-20", "1e6", "7"}, "", ErrArgCount},
		{"word", []string{"twenty", "20", "2.4e9", "1", "15", "1e-20", "1e6"}, "tx_w", ErrNotNumeric},
		{"empty", []string{"20", "20", "", "1", "15", "1e-20", "1e6"}, "freq_hz", ErrNotNumeric},
		{"unit suffix", []string{"20", "20", "2.4e9", "1km", "15", "1e-20", "1e6"}, "dist_km", ErrNotNumeric},
		{"out of range", []string{"20", "20", "2.4e9", "1", "15", "1e-20", "1e400"}, "bw_hz", ErrNotNumeric},
		{"nan", []string{"20", "20", "2.4e9", "1", "NaN", "1e-20", "1e6"}, "rx_gain", ErrNotFinite},
		{"inf", []string{"20", "20", "2.4e9", "1", "15", "-Inf", "1e6"}, "n0_j", ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			if err == nil {
				t.Fatal("ParseArgs succeeded, want error")
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("error %v (%T) is not an InputError", err, err)
			}
			if inputErr.Param != tt.param {
				t.Errorf("Param = %q, want %q", inputErr.Param, tt.param)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseArgsAcceptsNegatives(t *testing.T) {
	p, err := ParseArgs([]string{"-20", "20", "2.4e9", "1", "15", "1e-20", "1e6"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if p.TxPower != -20 {
		t.Fatalf("TxPower = %v, want -20", p.TxPower)
	}
	// Well formed, so the failure belongs to the math, not the input.
	_, err = Compute(p)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("Compute: got %v, want DomainError", err)
	}
}

func TestParseGainMode(t *testing.T) {
	tests := []struct {
		in   string
		want GainMode
		err  bool
	}{
		{"", GainLinear, false},
		{"linear", GainLinear, false},
		{"DB", GainDB, false},
		{" db ", GainDB, false},
		{"dbi", GainLinear, true},
	}
	for _, tt := range tests {
		got, err := ParseGainMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseGainMode(%q) error = %v, want error %v", tt.in, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseGainMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if err != nil && !errors.Is(err, ErrGainMode) {
			t.Errorf("ParseGainMode(%q) error = %v, want %v", tt.in, err, ErrGainMode)
		}
	}
}
