package link

import (
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// SpeedOfLight in m/s.
const SpeedOfLight = float64(constant.LightSpeedInVacuum)

// Fixed link budget losses in dB. They are neutral in the reference link
// budget and only reach the formula through Losses.
const (
	DefaultLineLossDB        = -1.0
	DefaultAtmosphericLossDB = 0.0
)

// 2^64 as a float64; anything at or above it does not fit the result.
const maxBitRate = float64(1 << 64)

type Losses struct {
	LineDB        float64
	AtmosphericDB float64
}

type Options struct {
	GainMode GainMode
	Losses   Losses
}

func DefaultOptions() Options {
	return Options{
		GainMode: GainLinear,
		Losses: Losses{
			LineDB:        DefaultLineLossDB,
			AtmosphericDB: DefaultAtmosphericLossDB,
		},
	}
}

// Budget is every intermediate value of one evaluation.
type Budget struct {
	Params   Params
	GainMode GainMode

	Wavelength     unit.Length
	Distance       unit.Length
	LineLoss       float64
	AtmLoss        float64
	PathLoss       float64
	CapacityFactor unit.Power
	NoiseFactor    unit.Power
	Ratio          float64
	RawBitRate     float64
	BitRate        uint64
}

// PathLossDB is the free-space path loss expressed as a positive dB figure.
func (b Budget) PathLossDB() float64 {
	return -LinearToDB(b.PathLoss)
}

func (b Budget) SNRDB() float64 {
	return LinearToDB(b.Ratio)
}

// Compute returns the floored channel capacity in bits per second using the
// literal gain semantics and the default losses.
func Compute(p Params) (uint64, error) {
	b, err := Evaluate(p, DefaultOptions())
	if err != nil {
		return 0, err
	}
	return b.BitRate, nil
}

// Evaluate runs the free-space path loss and Shannon-Hartley pipeline.
// The order of operations is fixed so results match the reference
// calculation bit for bit.
func Evaluate(p Params, opts Options) (Budget, error) {
	b := Budget{Params: p, GainMode: opts.GainMode}

	if p.Frequency == 0 {
		return b, domainError(ErrZeroFreq)
	}
	if p.DistanceKm == 0 {
		return b, domainError(ErrZeroDist)
	}

	wavelength := SpeedOfLight / p.Frequency
	distanceM := p.DistanceKm * unit.Kilo

	lineLoss := DBToLinear(opts.Losses.LineDB)
	atmLoss := DBToLinear(opts.Losses.AtmosphericDB)

	r := wavelength / (4 * math.Pi * distanceM)
	pathLoss := r * r

	txGain := opts.GainMode.apply(p.TxGain)
	rxGain := opts.GainMode.apply(p.RxGain)
	capacityFactor := p.TxPower * lineLoss * txGain * pathLoss * atmLoss * rxGain
	noiseFactor := p.NoiseDensity * p.Bandwidth

	b.Wavelength = unit.Length(wavelength)
	b.Distance = unit.Length(distanceM)
	b.LineLoss = lineLoss
	b.AtmLoss = atmLoss
	b.PathLoss = pathLoss
	b.CapacityFactor = unit.Power(capacityFactor)
	b.NoiseFactor = unit.Power(noiseFactor)

	if noiseFactor == 0 {
		return b, domainError(ErrDegenerate)
	}

	ratio := capacityFactor / noiseFactor
	b.Ratio = ratio
	// A negative ratio can only come from a negative power, gain or noise
	// term; ratio <= -1 would put log2 outside its domain.
	if math.IsNaN(ratio) || ratio < 0 {
		return b, domainError(ErrInvalidSNR)
	}

	raw := p.Bandwidth * math.Log2(ratio+1)
	b.RawBitRate = raw
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 || raw >= maxBitRate {
		return b, domainError(ErrNonFiniteBR)
	}

	b.BitRate = uint64(math.Floor(raw))
	return b, nil
}
