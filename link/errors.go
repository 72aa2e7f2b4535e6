package link

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrArgCount    = errors.New("wrong number of arguments")
	ErrNotNumeric  = errors.New("not a number")
	ErrNotFinite   = errors.New("not a finite number")
	ErrGainMode    = errors.New("unknown gain mode")
	ErrZeroFreq    = errors.New("zero frequency")
	ErrZeroDist    = errors.New("zero distance")
	ErrDegenerate  = errors.New("degenerate channel: zero bandwidth or zero noise density")
	ErrInvalidSNR  = errors.New("invalid signal-to-noise ratio")
	ErrNonFiniteBR = errors.New("capacity is not a finite bit rate")
)

// InputError is returned when the values handed to the calculator cannot be
// turned into a Params. Nothing has been computed when one is returned.
type InputError struct {
	Param string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("input error: %v", e.Err)
	}
	return fmt.Sprintf("input error: %s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// DomainError is returned when well-formed inputs drive the pipeline into a
// mathematically invalid value.
type DomainError struct {
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %v", e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func domainError(err error) error {
	return &DomainError{Err: err}
}
