package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"./..."}, cfg.Packages)
	assert.Equal(t, "./resolvers", cfg.Output.Dir)
	assert.Equal(t, "resolvers", cfg.Output.Package)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "putgen.yaml")

	yaml := `packages:
  - ./models/...
output:
  dir: ./gen
  package: generated
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	cfg, err := Load(nil, cfgPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"./models/..."}, cfg.Packages)
	assert.Equal(t, "./gen", cfg.Output.Dir)
	assert.Equal(t, "generated", cfg.Output.Package)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "putgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  dir: ./from_file\n"), 0o644))

	t.Setenv("PUTGEN_OUTPUT_DIR", "./from_env")

	cfg, err := Load(nil, cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "./from_env", cfg.Output.Dir)
}

func TestLoad_ChangedFlagsWin(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PUTGEN_OUTPUT_PACKAGE", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSlice("packages", nil, "")
	flags.String("out", "", "")
	flags.String("pkg", "", "")
	require.NoError(t, flags.Parse([]string{"--pkg=from_flag", "--packages=./a,./b"}))

	cfg, err := Load(flags, "")
	require.NoError(t, err)

	assert.Equal(t, "from_flag", cfg.Output.Package)
	assert.Equal(t, []string{"./a", "./b"}, cfg.Packages)
	// Untouched flags must not shadow other sources.
	assert.Equal(t, "./resolvers", cfg.Output.Dir)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Packages: []string{"./..."},
		Output:   OutputConfig{Dir: "./resolvers", Package: "resolvers"},
	}
	assert.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Packages = nil
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Output.Dir = "  "
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Output.Package = "not-an-identifier"
	assert.Error(t, bad.Validate())
}
