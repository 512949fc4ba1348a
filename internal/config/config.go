package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go-etl-designer/internal/model"
	"go-etl-designer/internal/pipeline"
)

// Config holds the server settings. Precedence: defaults < YAML file < environment < flags.
type Config struct {
	Addr           string `yaml:"addr"`
	DBPath         string `yaml:"db"`             // sqlite DSN for the download history
	MaxUploadBytes int64  `yaml:"maxUploadBytes"` // upload limit, enforced by the HTTP layer
	PreviewRows    int    `yaml:"previewRows"`
	OutputName     string `yaml:"outputName"` // file the generated script writes
	ScriptName     string `yaml:"scriptName"` // download name of the generated script
	LogLevel       string `yaml:"logLevel"`
	PrettyLogs     bool   `yaml:"prettyLogs"`
}

const (
	EnvAddr     = "ETL_DESIGNER_ADDR"
	EnvDB       = "ETL_DESIGNER_DB"
	EnvLogLevel = "ETL_DESIGNER_LOG_LEVEL"
	EnvPretty   = "ETL_DESIGNER_PRETTY_LOGS"
)

func Default() Config {
	return Config{
		Addr:           ":8080",
		DBPath:         "",
		MaxUploadBytes: 15 << 20,
		PreviewRows:    pipeline.DefaultPreviewRows,
		OutputName:     model.DefaultOutputName,
		ScriptName:     pipeline.ScriptFileName,
		LogLevel:       "info",
		PrettyLogs:     true,
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup(EnvDB); ok {
		c.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPretty); ok && v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvPretty)
		}
		c.PrettyLogs = pretty
	}
	return nil
}

// Validate rejects settings the server cannot run with
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.Errorf("config: maxUploadBytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.PreviewRows <= 0 {
		return errors.Errorf("config: previewRows must be positive, got %d", c.PreviewRows)
	}
	if c.OutputName == "" || c.ScriptName == "" {
		return errors.New("config: outputName and scriptName are required")
	}
	return nil
}
