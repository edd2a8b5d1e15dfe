package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
)

type cliEnv struct {
	dir    string
	config string
	bistro string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()

	dir := t.TempDir()
	config := filepath.Join(dir, "siterender.yaml")
	body := "log:\n  level: warn\n  format: json\nstore:\n  driver: dir\n  dir: " + filepath.Join(dir, "sites") + "\n"
	require.NoError(t, os.WriteFile(config, []byte(body), 0o644))

	bistro := filepath.Join(dir, "bistro.json")
	require.NoError(t, os.WriteFile(bistro, []byte(sitetest.Bistro), 0o644))

	return cliEnv{dir: dir, config: config, bistro: bistro}
}

func (e cliEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (e cliEnv) run(args ...string) (string, string, error) {
	return e.runContext(context.Background(), args...)
}

func (e cliEnv) runContext(ctx context.Context, args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", e.config, "--env-file", filepath.Join(e.dir, ".env")}, args...))

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestConfigErrorsAreReported(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	bad := env.write(t, "bad.yaml", "render:\n  theme_mode: sideways\n")

	_, _, err := env.run("--config", bad, "show", env.bistro)
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.theme_mode")
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestMissingDocument(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	_, _, err := env.run("render", filepath.Join(env.dir, "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Check that the file exists.")

	_, _, err = env.run("render", env.dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "is a directory")
}

func TestMalformedDocument(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t)
	broken := env.write(t, "broken.json", "{\n  \"metadata\": {\n    \"title\": \n}")

	_, _, err := env.run("show", broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse error")
	require.True(t, strings.Contains(err.Error(), "broken.json"))
}
