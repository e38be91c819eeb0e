package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.MarginMM != 12 || cfg.SpacingMM != 6 {
		t.Errorf("margins = %g/%g, expected 12/6", cfg.MarginMM, cfg.SpacingMM)
	}
	if cfg.VouchersPerPage != 3 {
		t.Errorf("vouchers_per_page = %d, expected 3", cfg.VouchersPerPage)
	}
	if cfg.StartNumber != 1 {
		t.Errorf("start_number = %d, expected 1", cfg.StartNumber)
	}
	if !cfg.FilterZero() {
		t.Error("zero filtering should default to on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `company_name: 测试公司
margin_mm: 10
spacing_mm: 4
vouchers_per_page: 2
start_number: 101
filter_zero_amounts: false
fallback_debit_account: 库存现金
fallback_credit_account: 银行存款
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.CompanyName != "测试公司" {
		t.Errorf("company_name = %q", cfg.CompanyName)
	}
	if cfg.VouchersPerPage != 2 || cfg.StartNumber != 101 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.FilterZero() {
		t.Error("filter_zero_amounts: false should disable filtering")
	}
	if cfg.FallbackDebitAccount != "库存现金" || cfg.FallbackCreditAccount != "银行存款" {
		t.Errorf("fallback accounts = %q/%q", cfg.FallbackDebitAccount, cfg.FallbackCreditAccount)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VOUCHERGEN_COMPANY_NAME", "环境公司")
	t.Setenv("VOUCHERGEN_FONT_PATH", "/tmp/font.ttf")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CompanyName != "环境公司" {
		t.Errorf("company_name = %q, expected env override", cfg.CompanyName)
	}
	if cfg.FontPath != "/tmp/font.ttf" {
		t.Errorf("font_path = %q, expected env override", cfg.FontPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"vouchers per page too high", func(c *Config) { c.VouchersPerPage = 5 }, "vouchers_per_page"},
		{"vouchers per page one", func(c *Config) { c.VouchersPerPage = 1 }, "vouchers_per_page"},
		{"zero margin", func(c *Config) { c.MarginMM = 0 }, "margin_mm"},
		{"negative spacing", func(c *Config) { c.SpacingMM = -1 }, "spacing_mm"},
		{"negative start number", func(c *Config) { c.StartNumber = -1 }, "start_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{MarginMM: 12, SpacingMM: 6, VouchersPerPage: 3, StartNumber: 1}
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should name %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := &Config{MarginMM: 0, SpacingMM: -1, VouchersPerPage: 9, StartNumber: -5}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	for _, field := range []string{"vouchers_per_page", "margin_mm", "spacing_mm", "start_number"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should report %q: %v", field, err)
		}
	}
}
