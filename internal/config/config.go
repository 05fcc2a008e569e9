package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Pool Pool
}

type Pool struct {
	ResultsDir string `envconfig:"RESULTS_DIR" default:"bracket_results"`
	LogosDir   string `envconfig:"LOGOS_DIR" default:"team_logos"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
