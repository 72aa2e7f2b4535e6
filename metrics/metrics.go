// Package metrics exports the result of a run in the node exporter textfile
// format so scheduled invocations can be scraped.
package metrics

import (
	"github.com/jrwynneiii/maxbitrate/link"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "maxbitrate"

type Recorder struct {
	registry   *prometheus.Registry
	capacity   prometheus.Gauge
	snr        prometheus.Gauge
	pathLoss   prometheus.Gauge
	wavelength prometheus.Gauge
	info       *prometheus.GaugeVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity_bits_per_second",
			Help:      "Floored Shannon-Hartley capacity of the link.",
		}),
		snr: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snr_db",
			Help:      "Received signal to noise ratio in dB.",
		}),
		pathLoss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_loss_db",
			Help:      "Free-space path loss in dB.",
		}),
		wavelength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wavelength_meters",
			Help:      "Carrier wavelength.",
		}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "info",
			Help:      "How antenna gains were applied.",
		}, []string{"gain_mode"}),
	}
	r.registry.MustRegister(r.capacity, r.snr, r.pathLoss, r.wavelength, r.info)
	return r
}

func (r *Recorder) Observe(b link.Budget) {
	r.capacity.Set(float64(b.BitRate))
	r.snr.Set(b.SNRDB())
	r.pathLoss.Set(b.PathLossDB())
	r.wavelength.Set(float64(b.Wavelength))
	r.info.Reset()
	r.info.WithLabelValues(b.GainMode.String()).Set(1)
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically replaces path with the current values.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to %s", path)
	}
	return nil
}
