package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultOutputDir    = "."
	DefaultChartsPrefix = "abandoned-checkouts"
	DefaultRecencyDays  = 60
	DefaultPercentile   = 0.9

	serverOutputDirName = "commerce-reports"
)

// ReportConfig holds the settings shared by the report commands and the task endpoints.
type ReportConfig struct {
	OutputDir    string  `validate:"required"`
	ChartsBucket string  `validate:"omitempty,min=3,max=222"`
	ChartsPrefix string  `validate:"omitempty"`
	RecencyDays  int     `validate:"min=0"`
	Percentile   float64 `validate:"gt=0,lte=1"`
}

var validate = validator.New()

// LoadReportConfig reads the report settings from the environment.
// Every setting is optional.
func LoadReportConfig() (*ReportConfig, error) {
	return loadReportConfig(DefaultOutputDir)
}

// LoadServerReportConfig is LoadReportConfig for the task server, where the
// working directory is read-only. Charts default to a temp directory.
func LoadServerReportConfig() (*ReportConfig, error) {
	return loadReportConfig(ServerOutputDir())
}

func ServerOutputDir() string {
	return filepath.Join(os.TempDir(), serverOutputDirName)
}

func loadReportConfig(outputDir string) (*ReportConfig, error) {
	recencyDays, err := GetEnvInt("REENGAGEMENT_RECENCY_DAYS", DefaultRecencyDays)
	if err != nil {
		return nil, fmt.Errorf("invalid REENGAGEMENT_RECENCY_DAYS: %w", err)
	}

	percentile, err := GetEnvFloat("REENGAGEMENT_PERCENTILE", DefaultPercentile)
	if err != nil {
		return nil, fmt.Errorf("invalid REENGAGEMENT_PERCENTILE: %w", err)
	}

	cfg := &ReportConfig{
		OutputDir:    GetEnv("REPORTS_OUTPUT_DIR", outputDir),
		ChartsBucket: GetEnv("CHARTS_BUCKET", ""),
		ChartsPrefix: GetEnv("CHARTS_PREFIX", DefaultChartsPrefix),
		RecencyDays:  recencyDays,
		Percentile:   percentile,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ReportConfig) Validate() error {
	return validate.Struct(c)
}
