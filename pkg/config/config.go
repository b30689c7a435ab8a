package config

import (
	"os"
	"strings"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Paths   PathsConfig
	Rules   RulesConfig
	Watch   WatchConfig
	Ledgers LedgersConfig
}

type PathsConfig struct {
	InputDir  string
	OutputDir string
}

type RulesConfig struct {
	// RuleSet selects the keyword rule set version ("default" or "legacy").
	RuleSet string
}

type WatchConfig struct {
	// Schedule is a standard 5-field cron expression for watch mode.
	Schedule string
}

type LedgersConfig struct {
	Bank     string
	Sales    string
	Purchase string
	// Overrides collects LEDGER_<CATEGORY> entries, keyed by the lowercased
	// category name.
	Overrides map[string]string
	// BankOverrides collects BANK_LEDGER_<CODE> entries, keyed by bank code.
	BankOverrides map[string]string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Paths: PathsConfig{
			InputDir:  getEnv("INPUT_DIR", "statements"),
			OutputDir: getEnv("OUTPUT_DIR", "output"),
		},
		Rules: RulesConfig{
			RuleSet: getEnv("RULE_SET", "default"),
		},
		Watch: WatchConfig{
			Schedule: getEnv("WATCH_SCHEDULE", "*/5 * * * *"),
		},
		Ledgers: LedgersConfig{
			Bank:          getEnv("BANK_LEDGER", "Bank A/c"),
			Sales:         getEnv("SALES_LEDGER", "Sales A/c"),
			Purchase:      getEnv("PURCHASE_LEDGER", "Purchase A/c"),
			Overrides:     collectPrefix("LEDGER_"),
			BankOverrides: collectPrefix("BANK_LEDGER_"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// collectPrefix gathers every FOO_X=v environment entry into a map keyed by
// the lowercased suffix.
func collectPrefix(prefix string) map[string]string {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		if suffix, found := strings.CutPrefix(key, prefix); found && suffix != "" {
			out[strings.ToLower(suffix)] = value
		}
	}
	return out
}
