// Package config reads service endpoints and batch settings from the
// environment. Every value has a default, so an empty environment talks to
// the public MyVariant.info and Ensembl GRCh37 servers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. RSIDLOCI_ENSEMBL_URL.
const Prefix = "rsidloci"

type Config struct {
	MyVariantURL string        `envconfig:"MYVARIANT_URL" default:"https://myvariant.info"`
	EnsemblURL   string        `envconfig:"ENSEMBL_URL" default:"https://grch37.rest.ensembl.org"`
	Delay        time.Duration `envconfig:"DELAY" default:"200ms"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
	PrettyLog    bool          `envconfig:"PRETTY_LOG" default:"true"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		MyVariantURL: "https://myvariant.info",
		EnsemblURL:   "https://grch37.rest.ensembl.org",
		Delay:        200 * time.Millisecond,
		PrettyLog:    true,
	}
}

func New() (Config, error) {
	var conf Config
	if err := envconfig.Process(Prefix, &conf); err != nil {
		return conf, fmt.Errorf("config: %w", err)
	}

	conf.MyVariantURL = strings.TrimRight(conf.MyVariantURL, "/")
	conf.EnsemblURL = strings.TrimRight(conf.EnsemblURL, "/")

	return conf, nil
}
