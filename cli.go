package main

import (
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/maxbitrate/report"
)

type CLI struct {
	Verbose     bool     `help:"Prints debug output to stderr"`
	Config      string   `help:"HCL config file to use instead of the search path" placeholder:"PATH"`
	GainMode    string   `name:"gain-mode" help:"How antenna gains are applied: linear (multiplied as given) or db (converted from decibels)" placeholder:"MODE"`
	LineLossDB  *float64 `name:"line-loss-db" help:"Transmission line loss exponent in dB (default -1)"`
	AtmLossDB   *float64 `name:"atm-loss-db" help:"Atmospheric loss exponent in dB (default 0)"`
	MetricsFile string   `name:"metrics-file" help:"Write the result as Prometheus metrics to this textfile" placeholder:"PATH"`

	Calc   CalcCmd   `cmd:"" default:"withargs" help:"Prints the maximum bit rate of the link in bits per second"`
	Budget BudgetCmd `cmd:"" help:"Prints every step of the link budget"`
}

// Values are taken as strings so count and parse failures are reported as
// input errors rather than kong usage errors.
type CalcCmd struct {
	Values []string `arg:"" optional:"" name:"value" help:"tx_w tx_gain freq_hz dist_km rx_gain n0_j bw_hz"`
}

func (c *CalcCmd) Run(app *App) error {
	b, err := app.Evaluate(c.Values)
	if err != nil {
		return err
	}
	return report.WriteCapacity(app.Out, b.BitRate)
}

type BudgetCmd struct {
	Values []string `arg:"" optional:"" name:"value" help:"tx_w tx_gain freq_hz dist_km rx_gain n0_j bw_hz"`
}

func (c *BudgetCmd) Run(app *App) error {
	b, err := app.Evaluate(c.Values)
	if err != nil {
		return err
	}
	log.Debugf("Raw capacity %f bit/s floored to %d", b.RawBitRate, b.BitRate)
	return report.WriteBudget(app.Out, b)
}

// normalizeArgs rewrites args as flags, command, "--", values so kong never
// reads a negative value as a short flag. Flags that take a value are joined
// to it with "=" for the same reason.
func normalizeArgs(model *kong.Application, args []string) []string {
	takesValue := make(map[string]bool)
	for _, f := range model.Flags {
		if !f.IsBool() {
			takesValue["--"+f.Name] = true
		}
	}
	commands := make(map[string]bool)
	for _, child := range model.Children {
		commands[child.Name] = true
	}

	var flags, values []string
	command := ""
scan:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			values = append(values, args[i+1:]...)
			break scan
		case isNumber(arg):
			values = append(values, arg)
		case strings.HasPrefix(arg, "-"):
			if takesValue[arg] && i+1 < len(args) {
				arg += "=" + args[i+1]
				i++
			}
			flags = append(flags, arg)
		case command == "" && len(values) == 0 && commands[arg]:
			command = arg
		default:
			values = append(values, arg)
		}
	}

	if command == "" {
		command = "calc"
	}
	out := append(flags, command)
	if len(values) > 0 {
		out = append(out, "--")
		out = append(out, values...)
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
