package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jrwynneiii/maxbitrate/link"
	"gonum.org/v1/gonum/unit"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).PaddingRight(1)
	valueStyle  = lipgloss.NewStyle().PaddingLeft(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// WriteCapacity prints the bit rate as a bare integer.
func WriteCapacity(w io.Writer, bps uint64) error {
	_, err := fmt.Fprintln(w, bps)
	return err
}

// BudgetRows returns the label/value pairs shown by WriteBudget.
func BudgetRows(b link.Budget) [][]string {
	p := b.Params
	return [][]string{
		{"Transmit power", fmt.Sprintf("%g", unit.Power(p.TxPower))},
		{"Transmit gain", fmt.Sprintf("%g (%s)", p.TxGain, b.GainMode)},
		{"Carrier frequency", fmt.Sprintf("%g", unit.Frequency(p.Frequency))},
		{"Distance", fmt.Sprintf("%g", b.Distance)},
		{"Receive gain", fmt.Sprintf("%g (%s)", p.RxGain, b.GainMode)},
		{"Noise density", fmt.Sprintf("%g", unit.Energy(p.NoiseDensity))},
		{"Bandwidth", fmt.Sprintf("%g", unit.Frequency(p.Bandwidth))},
		{"Wavelength", fmt.Sprintf("%.6g", b.Wavelength)},
		{"Line loss", fmt.Sprintf("%.6g", b.LineLoss)},
		{"Atmospheric loss", fmt.Sprintf("%.6g", b.AtmLoss)},
		{"Path loss", fmt.Sprintf("%.6g (%.2f dB)", b.PathLoss, b.PathLossDB())},
		{"Received signal", fmt.Sprintf("%.6g", b.CapacityFactor)},
		{"Noise power", fmt.Sprintf("%.6g", b.NoiseFactor)},
		{"Signal to noise", fmt.Sprintf("%.6g (%.2f dB)", b.Ratio, b.SNRDB())},
		{"Capacity", fmt.Sprintf("%.2f bit/s", b.RawBitRate)},
		{"Maximum bit rate", fmt.Sprintf("%d bit/s", b.BitRate)},
	}
}

// WriteBudget renders every intermediate of b as a two column table.
func WriteBudget(w io.Writer, b link.Budget) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Quantity", "Value").
		Rows(BudgetRows(b)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			}
			return valueStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
