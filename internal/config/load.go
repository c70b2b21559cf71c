package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appDir         = "todoboard"
	userConfigName = "config.toml"

	EnvConfig    = "TODOBOARD_CONFIG"
	EnvTheme     = "TODOBOARD_THEME"
	EnvLogLevel  = "TODOBOARD_LOG_LEVEL"
	EnvLogFormat = "TODOBOARD_LOG_FORMAT"
	EnvLogFile   = "TODOBOARD_LOG_FILE"
	EnvExport    = "TODOBOARD_EXPORT"
)

var projectConfigNames = []string{"todoboard.toml", ".todoboard.toml"}

// Load builds the configuration from, in increasing priority:
// 1. Defaults
// 2. User config file (os.UserConfigDir()/todoboard/config.toml)
// 3. Project config file (todoboard.toml or .todoboard.toml in the working directory)
// 4. Explicit file (path argument, or TODOBOARD_CONFIG)
// 5. Environment variables
//
// Flags are applied by the caller afterwards. Every file is checked against
// the schema before it is decoded.
func Load(path string) (Config, error) {
	cfg := Default()
	for _, src := range Sources(path) {
		if err := loadFile(&cfg, src.Path); err != nil {
			return Config{}, fmt.Errorf("loading %s config file %s: %w", src.Layer, src.Path, err)
		}
	}
	loadFromEnv(&cfg)
	cfg.Finalize()
	return cfg, nil
}

// Source is a config file taking part in Load.
type Source struct {
	Layer string // user, project or explicit
	Path  string
}

// Sources lists the files Load reads, lowest priority first. An explicit
// path (or TODOBOARD_CONFIG) is listed even when it does not exist.
func Sources(path string) []Source {
	var out []Source
	if p := findUserConfigFile(); p != "" {
		out = append(out, Source{Layer: "user", Path: p})
	}
	if p := findProjectConfigFile(); p != "" {
		out = append(out, Source{Layer: "project", Path: p})
	}
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		out = append(out, Source{Layer: "explicit", Path: expandPath(path)})
	}
	return out
}

// Finalize expands paths and restores defaults for unusable values.
// Call it again after applying flag overrides.
func (c *Config) Finalize() {
	c.Log.File = expandPath(c.Log.File)
	c.Export = expandPath(c.Export)
	if c.Input.CharLimit <= 0 {
		c.Input.CharLimit = DefaultCharLimit
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = DefaultTheme
	}
	d := Default().Keys
	fill := func(dst *[]string, def []string) {
		if len(*dst) == 0 {
			*dst = def
		}
	}
	fill(&c.Keys.Add, d.Add)
	fill(&c.Keys.Edit, d.Edit)
	fill(&c.Keys.Delete, d.Delete)
	fill(&c.Keys.NextStatus, d.NextStatus)
	fill(&c.Keys.PrevStatus, d.PrevStatus)
	fill(&c.Keys.Toggle, d.Toggle)
	fill(&c.Keys.NextFilter, d.NextFilter)
	fill(&c.Keys.PrevFilter, d.PrevFilter)
	fill(&c.Keys.Quit, d.Quit)
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if err := validate(path, data); err != nil {
		return err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvExport); v != "" {
		cfg.Export = v
	}
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, appDir, userConfigName)
	if fileExists(p) {
		return p
	}
	return ""
}

func findProjectConfigFile() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, name := range projectConfigNames {
		p := filepath.Join(wd, name)
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// expandPath expands ~ and environment variables.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
