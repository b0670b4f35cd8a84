package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/walletbar/internal/provider"
)

// Config holds application configuration.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ProviderConfig describes how the wallet is reached.
type ProviderConfig struct {
	Transport string        `toml:"transport"`
	URL       string        `toml:"url"`
	Timeout   time.Duration `toml:"timeout"`
	Accounts  []string      `toml:"accounts"`
	Reject    bool          `toml:"reject"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title      string `toml:"title"`
	Username   string `toml:"username,omitempty"`
	Breakpoint int    `toml:"breakpoint"`
	Links      []Link `toml:"links"`
}

// Link is a navigation entry in the header.
type Link struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path   string `toml:"path"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Settings converts the provider section for the provider host.
func (p ProviderConfig) Settings() provider.Settings {
	return provider.Settings{
		Transport: p.Transport,
		URL:       p.URL,
		Timeout:   p.Timeout,
		Accounts:  append([]string(nil), p.Accounts...),
		Reject:    p.Reject,
	}
}

func dataDir() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return filepath.Join(d, "walletbar")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "walletbar")
}

// DefaultPath returns the config file location, honouring WALLETBAR_CONFIG.
func DefaultPath() string {
	if p := os.Getenv("WALLETBAR_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "walletbar", "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider: ProviderConfig{
			Transport: provider.TransportHTTP,
			URL:       "",
			Timeout:   2 * time.Minute,
		},
		UI: UIConfig{
			Title:      "walletbar",
			Username:   os.Getenv("USER"),
			Breakpoint: 100,
			Links: []Link{
				{Label: "Home", Path: "/"},
				{Label: "Markets", Path: "/markets"},
				{Label: "Portfolio", Path: "/portfolio"},
				{Label: "About", Path: "/about"},
			},
		},
		Log: LogConfig{
			Path:   filepath.Join(dataDir(), "walletbar.log"),
			Level:  "info",
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("provider.transport", d.Provider.Transport)
	v.SetDefault("provider.url", d.Provider.URL)
	v.SetDefault("provider.timeout", d.Provider.Timeout)
	v.SetDefault("provider.accounts", []string{})
	v.SetDefault("provider.reject", false)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.username", d.UI.Username)
	v.SetDefault("ui.breakpoint", d.UI.Breakpoint)
	v.SetDefault("ui.links", []map[string]any{
		{"label": "Home", "path": "/"},
		{"label": "Markets", "path": "/markets"},
		{"label": "Portfolio", "path": "/portfolio"},
		{"label": "About", "path": "/about"},
	})
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("walletbar", pflag.ContinueOnError)
	fs.String("config", "", "path to config file")
	fs.String("transport", "", "wallet transport: none, static, http, ws")
	fs.String("url", "", "wallet bridge url")
	fs.String("log-file", "", "log file path")
	return fs
}

// Load reads configuration from file, env and flags. Env var overrides use prefix WALLETBAR_.
// flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	path := DefaultPath()
	if flags != nil {
		if p, _ := flags.GetString("config"); p != "" {
			path = p
		}
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("WALLETBAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		binds := map[string]string{
			"provider.transport": "transport",
			"provider.url":       "url",
			"log.path":           "log-file",
		}
		for key, name := range binds {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail at connect time.
func (c Config) Validate() error {
	t := strings.ToLower(strings.TrimSpace(c.Provider.Transport))
	known := false
	for _, k := range provider.Transports {
		if t == k {
			known = true
			break
		}
	}
	if !known {
		msg := fmt.Sprintf("unknown provider transport %q", c.Provider.Transport)
		if s := suggest(t, provider.Transports); s != "" {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}
		return errors.New(msg)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %s", c.Provider.Timeout)
	}
	if c.UI.Breakpoint <= 0 {
		return fmt.Errorf("ui breakpoint must be positive, got %d", c.UI.Breakpoint)
	}
	return nil
}

// suggest returns the closest candidate within an edit distance of 2.
func suggest(in string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(in, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// WriteDefault writes the built-in configuration to path unless a file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	d := Default()
	d.UI.Username = ""
	file := struct {
		Provider struct {
			Transport string `toml:"transport"`
			URL       string `toml:"url"`
			Timeout   string `toml:"timeout"`
		} `toml:"provider"`
		UI  UIConfig  `toml:"ui"`
		Log LogConfig `toml:"log"`
	}{UI: d.UI, Log: d.Log}
	file.Provider.Transport = d.Provider.Transport
	file.Provider.URL = d.Provider.URL
	file.Provider.Timeout = d.Provider.Timeout.String()

	if err := toml.NewEncoder(f).Encode(file); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
