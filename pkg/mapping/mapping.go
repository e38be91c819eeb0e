// Package mapping classifies transaction descriptions into debit/credit
// account pairs using an ordered keyword rule list.
package mapping

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule associates a description keyword with an account pair. Either account
// may be omitted; the caller's fallback then fills that side.
type Rule struct {
	Keyword       string `yaml:"keyword"`
	DebitAccount  string `yaml:"debit_account"`
	CreditAccount string `yaml:"credit_account"`
}

// LoadRules reads an ordered rule list from a YAML file. A missing file is a
// valid empty rule set; a file whose content is not a list is an error.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("mapping file must contain a list of rules: %w", err)
	}
	return rules, nil
}

// Classify returns the account pair for a description. Rules are scanned in
// caller order and the first rule whose keyword is contained in the
// description wins; no match returns the fallbacks unchanged.
func Classify(description string, rules []Rule, fallbackDebit, fallbackCredit string) (string, string) {
	for _, rule := range rules {
		if rule.Keyword == "" || !strings.Contains(description, rule.Keyword) {
			continue
		}
		debit := rule.DebitAccount
		if debit == "" {
			debit = fallbackDebit
		}
		credit := rule.CreditAccount
		if credit == "" {
			credit = fallbackCredit
		}
		return debit, credit
	}
	return fallbackDebit, fallbackCredit
}
