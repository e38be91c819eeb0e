// Package config provides configuration management for voucher generation.
// It loads a YAML configuration file and applies overrides from environment
// variables and .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// allowedVouchersPerPage are the summary layout modes the voucher geometry
// supports on an A4 page.
var allowedVouchersPerPage = []int{2, 3}

// Config represents the voucher generation configuration.
type Config struct {
	CompanyName           string  `yaml:"company_name"`
	MarginMM              float64 `yaml:"margin_mm"`
	SpacingMM             float64 `yaml:"spacing_mm"`
	VouchersPerPage       int     `yaml:"vouchers_per_page"`
	StartNumber           int     `yaml:"start_number"`
	FilterZeroAmounts     *bool   `yaml:"filter_zero_amounts"`
	FallbackDebitAccount  string  `yaml:"fallback_debit_account"`
	FallbackCreditAccount string  `yaml:"fallback_credit_account"`
	FontPath              string  `yaml:"font_path"`
}

// Load loads configuration from a YAML file. A missing file is not an error;
// every field has a default. A .env file in the working directory is honored,
// and VOUCHERGEN_COMPANY_NAME / VOUCHERGEN_FONT_PATH environment variables
// override the file values.
func Load(path string) (*Config, error) {
	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		MarginMM:        12,
		SpacingMM:       6,
		VouchersPerPage: 3,
		StartNumber:     1,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("VOUCHERGEN_COMPANY_NAME"); v != "" {
		cfg.CompanyName = v
	}
	if v := os.Getenv("VOUCHERGEN_FONT_PATH"); v != "" {
		cfg.FontPath = v
	}

	return cfg, nil
}

// FilterZero reports whether rows without any amount should be dropped.
// Defaults to true when the config file does not say otherwise.
func (c *Config) FilterZero() bool {
	if c.FilterZeroAmounts == nil {
		return true
	}
	return *c.FilterZeroAmounts
}

// Validate validates the configuration and reports every problem found.
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(allowedVouchersPerPage, c.VouchersPerPage) {
		problems = append(problems, fmt.Sprintf("vouchers_per_page must be one of %v, got %d", allowedVouchersPerPage, c.VouchersPerPage))
	}
	if c.MarginMM <= 0 {
		problems = append(problems, fmt.Sprintf("margin_mm must be positive, got %g", c.MarginMM))
	}
	if c.SpacingMM < 0 {
		problems = append(problems, fmt.Sprintf("spacing_mm must not be negative, got %g", c.SpacingMM))
	}
	if c.StartNumber < 0 {
		problems = append(problems, fmt.Sprintf("start_number must not be negative, got %d", c.StartNumber))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
