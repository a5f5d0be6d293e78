package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL = "http://localhost:8080"

	// No client-side deadline unless configured.
	defaultTimeout time.Duration = 0
)

// Config holds CLI configuration.
type Config struct {
	APIURL      string
	Timeout     time.Duration
	StatePath   string
	LogPath     string
	AuthFile    string
	Version     string
	ShowVersion bool
}

// FileConfig is the persisted ~/.pg360/config.yaml.
type FileConfig struct {
	APIURL    string `yaml:"api_url,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
	AuthFile  string `yaml:"auth_file,omitempty"`
	Onboarded bool   `yaml:"onboarded"`
}

// ConfigDir returns the directory holding config, state and logs.
// PG360_HOME overrides the default ~/.pg360.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("PG360_HOME")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pg360"), nil
}

func configFilePath(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// LoadFileConfig reads config.yaml. A missing file is an empty config.
func LoadFileConfig(configDir string) (FileConfig, error) {
	data, err := os.ReadFile(configFilePath(configDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse %s: %w", configFilePath(configDir), err)
	}
	return fc, nil
}

// SaveFileConfig writes config.yaml.
func SaveFileConfig(configDir string, fc FileConfig) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(configFilePath(configDir), data, 0644)
}

// ParseFlags resolves configuration from flags, environment, config.yaml
// and defaults, in that order of precedence.
func ParseFlags(version string, args []string) (*Config, error) {
	config := &Config{Version: version}

	// Load .env files first so env-based defaults work with flag parsing.
	loadDotEnv(".env", ".env.local")

	configDir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fc, err := LoadFileConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	apiURL := firstNonEmpty(os.Getenv("PG360_API_URL"), fc.APIURL, defaultAPIURL)
	timeout, err := resolveTimeout(os.Getenv("PG360_TIMEOUT"), fc.Timeout)
	if err != nil {
		return nil, err
	}
	authFile := firstNonEmpty(os.Getenv("PG360_AUTH_FILE"), fc.AuthFile, filepath.Join(configDir, "auth.secret"))

	flags := flag.NewFlagSet("pg360-admin", flag.ContinueOnError)
	flags.StringVar(&config.APIURL, "api", apiURL, "Base URL of the events API (or set PG360_API_URL)")
	flags.DurationVar(&config.Timeout, "timeout", timeout, "HTTP timeout, 0 for none (or set PG360_TIMEOUT)")
	flags.StringVar(&config.StatePath, "state", filepath.Join(configDir, "state.db"), "Path to the local SQLite state file")
	flags.StringVar(&config.LogPath, "log", filepath.Join(configDir, "debug.log"), "Path to the debug log")
	flags.StringVar(&config.AuthFile, "auth-file", authFile, "Path to the admin credential file (or set PG360_AUTH_FILE)")
	flags.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if config.ShowVersion {
		return config, nil
	}

	explicitURL := os.Getenv("PG360_API_URL") != ""
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "api" {
			explicitURL = true
		}
	})

	if shouldRunOnboarding(fc, explicitURL) {
		url, err := runOnboarding(config.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
		fc.APIURL = url
		fc.Onboarded = true
		if err := SaveFileConfig(configDir, fc); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
		config.APIURL = url
	}

	config.APIURL = strings.TrimRight(strings.TrimSpace(config.APIURL), "/")
	if err := validateAPIURL(config.APIURL); err != nil {
		return nil, err
	}
	return config, nil
}

func loadDotEnv(paths ...string) {
	for _, p := range paths {
		// Existing environment wins; a missing file is fine.
		_ = godotenv.Load(p)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func resolveTimeout(env, file string) (time.Duration, error) {
	raw := firstNonEmpty(env, file)
	if raw == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", raw)
	}
	return d, nil
}

func shouldRunOnboarding(fc FileConfig, explicitURL bool) bool {
	if fc.Onboarded || explicitURL {
		return false
	}
	return stdinIsTerminal()
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
