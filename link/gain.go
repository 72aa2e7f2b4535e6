package link

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// GainMode selects how TxGain and RxGain enter the power product.
type GainMode int

const (
	// GainLinear multiplies the gain values in as given. This reproduces the
	// reference output even though the inputs are labelled dB.
	GainLinear GainMode = iota
	// GainDB converts the gain values with 10^(g/10) first.
	GainDB
)

func (m GainMode) String() string {
	switch m {
	case GainLinear:
		return "linear"
	case GainDB:
		return "db"
	}
	return "unknown"
}

func ParseGainMode(s string) (GainMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return GainLinear, nil
	case "db":
		return GainDB, nil
	}
	return GainLinear, &InputError{Param: "gain_mode", Value: s, Err: errors.Wrap(ErrGainMode, "want linear or db")}
}

func (m GainMode) apply(g float64) float64 {
	if m == GainDB {
		return DBToLinear(g)
	}
	return g
}

// DBToLinear converts a power ratio in decibels to a linear multiplier.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearToDB converts a linear power ratio to decibels.
func LinearToDB(x float64) float64 {
	return 10 * math.Log10(x)
}
