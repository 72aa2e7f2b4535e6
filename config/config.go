package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/hcl"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvPrefix = "MAXBITRATE_"

type LinkConf struct {
	GainMode          string  `koanf:"gain_mode"`
	LineLossDB        float64 `koanf:"line_loss_db"`
	AtmosphericLossDB float64 `koanf:"atmospheric_loss_db"`
}

type MetricsConf struct {
	TextfilePath string `koanf:"textfile_path"`
}

type Conf struct {
	Link    LinkConf    `koanf:"link"`
	Metrics MetricsConf `koanf:"metrics"`
}

// Default matches the reference link budget: literal gains, -1 dB line loss
// and no atmospheric loss.
func Default() Conf {
	return Conf{
		Link: LinkConf{
			GainMode:          "linear",
			LineLossDB:        -1,
			AtmosphericLossDB: 0,
		},
	}
}

func SearchPaths() []string {
	paths := []string{"/etc/maxbitrate/config.hcl"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "maxbitrate", "config.hcl"))
	}
	return append(paths, "./config.hcl")
}

// FindConfigPath returns the first of paths that exists, or "" if none do.
func FindConfigPath(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			log.Debugf("Found config file: %s", path)
			return path
		}
	}
	log.Debug("Config file not found, using defaults")
	return ""
}

// Load layers the HCL file at path (skipped when empty) and then any
// MAXBITRATE_ environment variables over Default.
func Load(path string) (Conf, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), hcl.Parser(true)); err != nil {
			return Conf{}, errors.Wrapf(err, "could not read config file %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
			key = strings.Replace(key, "_", ".", 1)
			log.Debugf("Found config env var: %s=%v", key, v)
			return key, v
		},
	}), nil)
	if err != nil {
		return Conf{}, errors.Wrap(err, "could not read environment")
	}

	conf := Default()
	if err := k.Unmarshal("", &conf); err != nil {
		return Conf{}, errors.Wrap(err, "could not decode config")
	}
	return conf, nil
}
