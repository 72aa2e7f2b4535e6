package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jrwynneiii/maxbitrate/link"
)

func TestWriteCapacity(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCapacity(&buf, 25488989); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "25488989\n" {
		t.Fatalf("WriteCapacity wrote %q", got)
	}
}

func TestWriteBudget(t *testing.T) {
	p := link.Params{
		TxPower:      20,
		TxGain:       20,
		Frequency:    2.4e9,
		DistanceKm:   1,
		RxGain:       15,
		NoiseDensity: 1e-20,
		Bandwidth:    1e6,
	}
	b, err := link.Evaluate(p, link.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	rows := BudgetRows(b)
	last := rows[len(rows)-1]
	if last[0] != "Maximum bit rate" || last[1] != "25488989 bit/s" {
		t.Fatalf("last row = %q", last)
	}

	var buf bytes.Buffer
	if err := WriteBudget(&buf, b); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Quantity", "Wavelength", "0.124914 m", "100.05 dB", "25488989 bit/s", "linear"} {
		if !strings.Contains(out, want) {
			t.Errorf("budget table missing %q:\n%s", want, out)
		}
	}
}
