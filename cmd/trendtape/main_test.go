package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/trendtape/internal/cookie"
)

// execute runs the CLI with an isolated config and cookie store.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TRENDTAPE_STORE", filepath.Join(dir, "cookies.db"))
	return executeIn(t, dir, args...)
}

func executeIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSplitCommand(t *testing.T) {
	out, err := execute(t, "split", "#abc#def#ghi")
	require.NoError(t, err)
	assert.Equal(t, "0\t4.00\t\"abc\"\n1\t8.00\t\"def\"\n", out)
}

func TestSplitCommandWidth(t *testing.T) {
	out, err := execute(t, "split", "#ab#", "--width", "8")
	require.NoError(t, err)
	assert.Equal(t, "0\t6.00\t\"ab\"\n", out)
}

func TestSplitCommandRejectsNegativeWidth(t *testing.T) {
	_, err := execute(t, "split", "#ab#cd#", "--width", "-4")
	assert.ErrorContains(t, err, "--width must not be negative")
}

func TestSplitCommandAt(t *testing.T) {
	out, err := execute(t, "split", "#abc#def#ghi", "--at", "5")
	require.NoError(t, err)
	assert.Equal(t, "def\n", out)

	out, err = execute(t, "split", "#abc#def#ghi", "--at", "9")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestSplitCommandNoSegments(t *testing.T) {
	out, err := execute(t, "split", "abc#def")
	require.NoError(t, err)
	assert.Equal(t, "no selectable segments\n", out)
}

func TestCheckCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"good account", []string{"check", "account", "alice"}, "Ok", false},
		{"short account", []string{"check", "account", "al"}, "Not enough characters", true},
		{"strong password", []string{"check", "password", "abc123"}, "Strong password", false},
		{"weak password", []string{"check", "password", "abcdefg"}, "Weak Password", true},
		{"repeat mismatch", []string{"check", "password", "abc123", "abc124"}, "Passwords do not match", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, errCheckFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCookiesCommands(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "cookies.db")
	t.Setenv("TRENDTAPE_STORE", storePath)

	store, err := cookie.Open(cookie.Config{Path: storePath})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.SetAttr(ctx, cookie.StateCookie, cookie.AttrSeed, "mars lake"))
	require.NoError(t, store.Close())

	out, err := executeIn(t, dir, "cookies", "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, cookie.StateCookie+"\tseed=mars lake\t"), out)

	out, err = executeIn(t, dir, "cookies", "get", cookie.StateCookie, "--attr", cookie.AttrSeed)
	require.NoError(t, err)
	assert.Equal(t, "mars lake\n", out)

	_, err = executeIn(t, dir, "cookies", "delete", cookie.StateCookie)
	require.NoError(t, err)

	out, err = executeIn(t, dir, "cookies", "list")
	require.NoError(t, err)
	assert.Equal(t, "no cookies\n", out)

	_, err = executeIn(t, dir, "cookies", "get", cookie.StateCookie)
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestCookiesDeleteRejectsBadName(t *testing.T) {
	_, err := execute(t, "cookies", "delete", "a=b")
	assert.ErrorIs(t, err, cookie.ErrInvalidName)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRENDTAPE_STORE", filepath.Join(dir, "cookies.db"))

	out, err := executeIn(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	_, err = executeIn(t, dir, "config", "init")
	assert.Error(t, err, "init does not overwrite without --force")

	out, err = executeIn(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "pause_on_hover: true")
	assert.Contains(t, out, "max_length: 32")
}

func TestConfigInitForceRepairsBadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRENDTAPE_STORE", filepath.Join(dir, "cookies.db"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tape:\n  speed: 0\n"), 0o644))

	_, err := executeIn(t, dir, "config", "show")
	require.Error(t, err)

	_, err = executeIn(t, dir, "config", "init", "--force")
	require.NoError(t, err)

	out, err := executeIn(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "speed: 1\n")
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tape:\n  speed: -1\n"), 0o644))
	_, err := executeIn(t, dir, "split", "#a#")
	assert.Error(t, err)
}
