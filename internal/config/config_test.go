package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load(Sources{Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "eth0", cfg.NetworkInterface)
	assert.Equal(t, float32(3.0), cfg.LocoTimeout)
	assert.Equal(t, float32(10.0), cfg.ArmTimeout)
}

func TestLayering(t *testing.T) {
	file := writeFile(t, "g1.yaml", `
network_interface: enp2s0
loco_timeout: 5
log:
  level: debug
  format: json
metrics_addr: ":9464"
`)
	dot := writeFile(t, ".env", "G1_NETWORK_INTERFACE=eth1\nG1_ARM_TIMEOUT=12.5\n")

	cfg, err := Load(Sources{
		File:    file,
		EnvFile: dot,
		Environ: []string{"G1_ARM_TIMEOUT=8", "G1_LOG_LEVEL=warn", "G1_SIMULATE=true", "PATH=/usr/bin"},
	})
	require.NoError(t, err)

	assert.Equal(t, "eth1", cfg.NetworkInterface, ".env overrides yaml")
	assert.Equal(t, float32(5), cfg.LocoTimeout, "yaml overrides default")
	assert.Equal(t, float32(8), cfg.ArmTimeout, "process env overrides .env")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9464", cfg.MetricsAddr)
	assert.True(t, cfg.Simulate)
	assert.Equal(t, 3, cfg.Log.MaxBackups, "untouched keys keep defaults")
}

func TestInvalid(t *testing.T) {
	cases := map[string][]string{
		"empty interface": {"G1_NETWORK_INTERFACE= "},
		"zero timeout":    {"G1_LOCO_TIMEOUT=0"},
		"negative arm":    {"G1_ARM_TIMEOUT=-1"},
		"negative domain": {"G1_DOMAIN_ID=-2"},
		"unknown level":   {"G1_LOG_LEVEL=loud"},
		"unknown format":  {"G1_LOG_FORMAT=xml"},
	}
	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(Sources{Environ: environ})
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Load(Sources{Environ: []string{"G1_DOMAIN_ID=zero"}})
	assert.Error(t, err)

	_, err = Load(Sources{File: filepath.Join(t.TempDir(), "missing.yaml"), Environ: []string{}})
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "network_interface: [eth0\n")
	_, err = Load(Sources{File: bad, Environ: []string{}})
	assert.Error(t, err)

	_, err = Load(Sources{EnvFile: filepath.Join(t.TempDir(), "none.env"), Environ: []string{}})
	assert.Error(t, err)
}

func TestLogOptions(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/tmp/g1.log"
	opts := cfg.LogOptions()
	assert.Equal(t, "/tmp/g1.log", opts.File)
	assert.Equal(t, 50, opts.MaxSizeMB)
	assert.Equal(t, "info", opts.Level)
}
