package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "statements", cfg.Paths.InputDir)
		assert.Equal(t, "output", cfg.Paths.OutputDir)
		assert.Equal(t, "default", cfg.Rules.RuleSet)
		assert.Equal(t, "Bank A/c", cfg.Ledgers.Bank)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("INPUT_DIR", "/data/in")
		t.Setenv("RULE_SET", "legacy")
		t.Setenv("BANK_LEDGER", "Main Bank A/c")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/data/in", cfg.Paths.InputDir)
		assert.Equal(t, "legacy", cfg.Rules.RuleSet)
		assert.Equal(t, "Main Bank A/c", cfg.Ledgers.Bank)
	})

	t.Run("prefixed ledger overrides", func(t *testing.T) {
		t.Setenv("LEDGER_INTEREST", "Interest Income A/c")
		t.Setenv("BANK_LEDGER_HDFC", "HDFC Current A/c")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "Interest Income A/c", cfg.Ledgers.Overrides["interest"])
		assert.Equal(t, "HDFC Current A/c", cfg.Ledgers.BankOverrides["hdfc"])
	})
}
