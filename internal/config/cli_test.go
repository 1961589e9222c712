package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/keybind/sdlkey/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args []string, opts ...kong.Option) (*config.CLI, *kong.Context) {
	t.Helper()
	var cli config.CLI
	parser, err := kong.New(&cli, append([]kong.Option{kong.Name("sdlkey"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDefaults(t *testing.T) {
	cli, ctx := parse(t, []string{"lookup", "27", "Escape"})
	assert.Equal(t, "lookup <key>", ctx.Command())
	assert.Equal(t, []string{"27", "Escape"}, cli.Lookup.Keys)
	assert.Equal(t, "text", cli.Lookup.Format)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestParseFlags(t *testing.T) {
	cli, ctx := parse(t, []string{"--log.level=debug", "list", "--keypad", "-f", "yaml"})
	assert.Equal(t, "list", ctx.Command())
	assert.True(t, cli.List.Keypad)
	assert.Equal(t, "yaml", cli.List.Format)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SDLKEY_HEADER", "/opt/sdl/SDL_keycode.h")
	cli, _ := parse(t, []string{"verify"})
	assert.Equal(t, "/opt/sdl/SDL_keycode.h", cli.Verify.Header)
}

func TestConfigFiles(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "sdlkey.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("log:\n  level: warn\nout: generated.go\n"), 0o644))
	tomlPath := filepath.Join(dir, "sdlkey.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("header = \"/sdl/SDL_keycode.h\"\n"), 0o644))

	cli, _ := parse(t, []string{"gen"},
		kong.Configuration(kongyaml.Loader, yamlPath),
		kong.Configuration(kongtoml.Loader, tomlPath),
	)
	assert.Equal(t, "warn", cli.Log.Level)
	assert.Equal(t, "generated.go", filepath.Base(cli.Gen.Out))
	assert.Equal(t, "/sdl/SDL_keycode.h", cli.Gen.Header)

	cli, _ = parse(t, []string{"gen", "--out", "flag.go"}, kong.Configuration(kongyaml.Loader, yamlPath))
	assert.Equal(t, "flag.go", filepath.Base(cli.Gen.Out), "flags override config files")
}
