package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/maxbitrate/config"
	"github.com/jrwynneiii/maxbitrate/link"
	"github.com/jrwynneiii/maxbitrate/metrics"
	"github.com/pkg/errors"
)

const (
	exitOK = iota
	exitFailure
	exitInput
)

// App carries the resolved settings into the command Run methods.
type App struct {
	Out         io.Writer
	Options     link.Options
	MetricsFile string
}

func (a *App) Evaluate(values []string) (link.Budget, error) {
	p, err := link.ParseArgs(values)
	if err != nil {
		return link.Budget{}, err
	}
	log.Debugf("Evaluating link: %v (gain mode %s, losses %+v)", p, a.Options.GainMode, a.Options.Losses)

	b, err := link.Evaluate(p, a.Options)
	if err != nil {
		return b, err
	}
	log.Debugf("Wavelength %.6g, path loss %.2f dB, SNR %.2f dB", b.Wavelength, b.PathLossDB(), b.SNRDB())

	if a.MetricsFile != "" {
		rec := metrics.New()
		rec.Observe(b)
		if err := rec.WriteTextfile(a.MetricsFile); err != nil {
			return b, err
		}
		log.Debugf("Wrote metrics to %s", a.MetricsFile)
	}
	return b, nil
}

func options(c *CLI, conf config.Conf) (link.Options, error) {
	mode := conf.Link.GainMode
	if c.GainMode != "" {
		mode = c.GainMode
	}
	gainMode, err := link.ParseGainMode(mode)
	if err != nil {
		return link.Options{}, err
	}

	opts := link.Options{
		GainMode: gainMode,
		Losses: link.Losses{
			LineDB:        conf.Link.LineLossDB,
			AtmosphericDB: conf.Link.AtmosphericLossDB,
		},
	}
	if c.LineLossDB != nil {
		opts.Losses.LineDB = *c.LineLossDB
	}
	if c.AtmLossDB != nil {
		opts.Losses.AtmosphericDB = *c.AtmLossDB
	}
	return opts, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, link.Usage)
	fmt.Fprintf(w, "usage: maxbitrate [calc|budget] %s\n", strings.Join(link.ParamNames[:], " "))
}

// exitCode maps an error to the process status: 2 for bad input, 1 for
// anything else.
func exitCode(err error) int {
	var inputErr *link.InputError
	if errors.As(err, &inputErr) {
		return exitInput
	}
	return exitFailure
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetDefault(log.NewWithOptions(stderr, log.Options{Prefix: "maxbitrate"}))

	var c CLI
	parser, err := kong.New(&c,
		kong.Name("maxbitrate"),
		kong.Description("Estimates the maximum bit rate of a point-to-point radio link from free-space path loss and the Shannon-Hartley capacity."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(normalizeArgs(parser.Model, args))
	if err != nil {
		log.Errorf("Could not parse command line: %v", err)
		return exitInput
	}
	if c.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	path := c.Config
	if path == "" {
		path = config.FindConfigPath(config.SearchPaths())
	}
	conf, err := config.Load(path)
	if err != nil {
		log.Errorf("Could not load config: %v", err)
		return exitFailure
	}

	opts, err := options(&c, conf)
	if err != nil {
		log.Error(err)
		return exitInput
	}

	app := &App{
		Out:         stdout,
		Options:     opts,
		MetricsFile: conf.Metrics.TextfilePath,
	}
	if c.MetricsFile != "" {
		app.MetricsFile = c.MetricsFile
	}

	if err := ctx.Run(app); err != nil {
		if errors.Is(err, link.ErrArgCount) {
			usage(stderr)
		}
		log.Error(err)
		return exitCode(err)
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
