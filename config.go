package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from MALPRACTICE_* environment variables.
type Config struct {
	InputFile      string  `envconfig:"INPUT_FILE"`
	OutputFolder   string  `envconfig:"OUTPUT_FOLDER" default:"./"`
	AllegationCode string  `envconfig:"ALLEGATION_CODE" default:"1"`
	MinYear        float64 `envconfig:"MIN_YEAR" default:"2010"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string  `envconfig:"LOG_FORMAT" default:"console"`
	WriteXLSX      bool    `envconfig:"WRITE_XLSX" default:"true"`
	WriteParquet   bool    `envconfig:"WRITE_PARQUET" default:"true"`
	KeepArtifacts  bool    `envconfig:"KEEP_ARTIFACTS" default:"true"`
}

const envPrefix = "MALPRACTICE"

// loadConfig reads the environment. A non-empty arg overrides INPUT_FILE.
func loadConfig(arg string) (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return c, fmt.Errorf("error reading configuration: %w", err)
	}
	if arg != "" {
		c.InputFile = arg
	}
	if c.InputFile == "" {
		return c, fmt.Errorf("no input file: pass a path or set %s_INPUT_FILE", envPrefix)
	}
	return c, nil
}
