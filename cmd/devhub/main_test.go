package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devhub/internal/config"
)

func testParser() *docopt.Parser {
	return &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"--name", "Ada", "-d", "data.toml", "--log-file=hub.log", "-v"}, testParser())
	require.NoError(t, err)
	assert.Equal(t, cliArgs{
		name:    "Ada",
		data:    "data.toml",
		logFile: "hub.log",
		verbose: true,
	}, args)
}

func TestParseArgs_Init(t *testing.T) {
	args, err := parseArgs([]string{"init", "--config", "/tmp/x.toml"}, testParser())
	require.NoError(t, err)
	assert.True(t, args.init)
	assert.Equal(t, "/tmp/x.toml", args.configPath)
}

func TestParseArgs_Unknown(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"}, testParser())
	assert.Error(t, err)
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, applyFlags(cfg, cliArgs{name: "Ada", data: "d.toml", verbose: true}))
	assert.Equal(t, "Ada", cfg.Name)
	assert.Equal(t, "d.toml", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "devhub.log", cfg.LogFile, "unset flags keep config values")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, writeDefaultConfig(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Name, cfg.Name)
}
