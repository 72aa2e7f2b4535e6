package link

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Usage is printed when the calculator is invoked with the wrong number of values.
const Usage = "Incorrect number of arguments passed. Recheck the command line entered."

// ParamNames lists the positional values in the order they are read.
var ParamNames = [...]string{"tx_w", "tx_gain", "freq_hz", "dist_km", "rx_gain", "n0_j", "bw_hz"}

// Params holds the seven inputs of a single link evaluation.
type Params struct {
	// TxPower is the transmitter output power in watts.
	TxPower float64
	// TxGain is the transmit antenna gain. It is historically labelled dB but
	// is used as a linear multiplier unless GainDB is selected.
	TxGain float64
	// Frequency is the carrier frequency in hertz.
	Frequency float64
	// DistanceKm is the separation between the two ends in kilometres.
	DistanceKm float64
	// RxGain is the receive antenna gain, with the same caveat as TxGain.
	RxGain float64
	// NoiseDensity is the noise power spectral density in joules (W/Hz).
	NoiseDensity float64
	// Bandwidth is the available bandwidth in hertz.
	Bandwidth float64
}

// ParseArgs reads exactly len(ParamNames) values, in order, into a Params.
func ParseArgs(args []string) (Params, error) {
	if len(args) != len(ParamNames) {
		return Params{}, &InputError{
			Err: errors.Wrapf(ErrArgCount, "expected %d values (%s), got %d", len(ParamNames), strings.Join(ParamNames[:], " "), len(args)),
		}
	}

	var vals [len(ParamNames)]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return Params{}, &InputError{
				Param: ParamNames[i],
				Value: arg,
				Err:   errors.Wrap(ErrNotNumeric, err.Error()),
			}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, &InputError{Param: ParamNames[i], Value: arg, Err: ErrNotFinite}
		}
		vals[i] = v
	}

	return Params{
		TxPower:      vals[0],
		TxGain:       vals[1],
		Frequency:    vals[2],
		DistanceKm:   vals[3],
		RxGain:       vals[4],
		NoiseDensity: vals[5],
		Bandwidth:    vals[6],
	}, nil
}

func (p Params) String() string {
	return fmt.Sprintf("tx_w=%g tx_gain=%g freq_hz=%g dist_km=%g rx_gain=%g n0_j=%g bw_hz=%g",
		p.TxPower, p.TxGain, p.Frequency, p.DistanceKm, p.RxGain, p.NoiseDensity, p.Bandwidth)
}
