package config_test

import (
	"testing"
	"time"

	"school-payroll/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("EPF_EMPLOYEE_RATE", "")
	t.Setenv("NEGATIVE_NET_POLICY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "0.08", cfg.Payroll.EPFEmployeeRate.String())
	assert.Equal(t, "0.12", cfg.Payroll.EPFEmployerRate.String())
	assert.Equal(t, "0.03", cfg.Payroll.ETFRate.String())
	assert.Equal(t, "reject", cfg.Payroll.NegativeNetPolicy)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "LKR", cfg.Payroll.CurrencyLabel)
	assert.NotEmpty(t, cfg.Payroll.SchoolName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("EPF_EMPLOYEE_RATE", "0.1")
	t.Setenv("NEGATIVE_NET_POLICY", "FLAG")
	t.Setenv("SERVER_WRITE_TIMEOUT", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.1", cfg.Payroll.EPFEmployeeRate.String())
	assert.Equal(t, "flag", cfg.Payroll.NegativeNetPolicy)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad rate", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ETF_RATE", "three percent")
		_, err := config.Load()
		assert.ErrorContains(t, err, "ETF_RATE")
	})

	t.Run("bad policy", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("NEGATIVE_NET_POLICY", "clamp")
		_, err := config.Load()
		assert.ErrorContains(t, err, "NEGATIVE_NET_POLICY")
	})
}
