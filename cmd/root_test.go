package cmd

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PG360_HOME", dir)
	t.Setenv("PG360_API_URL", "")
	t.Setenv("PG360_TIMEOUT", "")
	t.Setenv("PG360_AUTH_FILE", "")
	return dir
}

func TestParseFlags_Precedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, SaveFileConfig(dir, FileConfig{APIURL: "http://file.local:1", Timeout: "5s", Onboarded: true}))

	cfg, err := ParseFlags("test", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://file.local:1", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.StatePath)
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogPath)
	assert.Equal(t, filepath.Join(dir, "auth.secret"), cfg.AuthFile)
	assert.Equal(t, "test", cfg.Version)

	t.Setenv("PG360_API_URL", "http://env.local:2/")
	t.Setenv("PG360_TIMEOUT", "2s")
	cfg, err = ParseFlags("test", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://env.local:2", cfg.APIURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)

	cfg, err = ParseFlags("test", []string{"-api", "https://flag.local:3", "-timeout", "0", "-auth-file", "/tmp/x.secret"})
	require.NoError(t, err)
	assert.Equal(t, "https://flag.local:3", cfg.APIURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "/tmp/x.secret", cfg.AuthFile)
}

func TestParseFlags_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := ParseFlags("dev", []string{"-api", defaultAPIURL})
	require.NoError(t, err)
	assert.Equal(t, defaultAPIURL, cfg.APIURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestParseFlags_Invalid(t *testing.T) {
	isolate(t)

	_, err := ParseFlags("dev", []string{"-api", "localhost:8080"})
	assert.Error(t, err)

	t.Setenv("PG360_TIMEOUT", "logo")
	_, err = ParseFlags("dev", []string{"-api", defaultAPIURL})
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestParseFlags_Version(t *testing.T) {
	isolate(t)
	cfg, err := ParseFlags("1.2.3", []string{"-version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestFileConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	fc, err := LoadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)

	want := FileConfig{APIURL: "http://api.local", AuthFile: "/etc/pg360/auth.secret", Onboarded: true}
	require.NoError(t, SaveFileConfig(dir, want))
	got, err := LoadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOnboardingModel(t *testing.T) {
	m := newOnboardingModel(defaultAPIURL)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ftp://x")})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(onboardingModel)
	assert.Nil(t, cmd)
	assert.Equal(t, stepURL, m.step)
	assert.NotEmpty(t, m.problem)

	m.input.SetValue("https://api.pg360.local/")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(onboardingModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, stepDone, m.step)
	assert.Equal(t, "https://api.pg360.local", m.apiURL)

	blank := newOnboardingModel(defaultAPIURL)
	next, _ = blank.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, defaultAPIURL, next.(onboardingModel).apiURL)
}
