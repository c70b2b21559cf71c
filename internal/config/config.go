// Package config loads todoboard settings from TOML files, the environment
// and command-line flags.
package config

const (
	DefaultTheme       = "classic"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultCharLimit   = 200
	DefaultPlaceholder = "Enter todo"
)

// Config is the effective configuration.
type Config struct {
	Theme  string      `toml:"theme"`
	Export string      `toml:"export,omitempty"`
	Log    LogConfig   `toml:"log"`
	Input  InputConfig `toml:"input"`
	Keys   KeyConfig   `toml:"keys"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file,omitempty"`
}

type InputConfig struct {
	CharLimit   int    `toml:"char_limit"`
	Placeholder string `toml:"placeholder"`
}

// KeyConfig maps board actions to key names as reported by Bubble Tea.
// Each action accepts several keys.
type KeyConfig struct {
	Add        []string `toml:"add"`
	Edit       []string `toml:"edit"`
	Delete     []string `toml:"delete"`
	NextStatus []string `toml:"next_status"`
	PrevStatus []string `toml:"prev_status"`
	Toggle     []string `toml:"toggle"`
	NextFilter []string `toml:"next_filter"`
	PrevFilter []string `toml:"prev_filter"`
	Quit       []string `toml:"quit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Input: InputConfig{
			CharLimit:   DefaultCharLimit,
			Placeholder: DefaultPlaceholder,
		},
		Keys: KeyConfig{
			Add:        []string{"a"},
			Edit:       []string{"e"},
			Delete:     []string{"d"},
			NextStatus: []string{"s"},
			PrevStatus: []string{"S"},
			Toggle:     []string{" "},
			NextFilter: []string{"f", "tab"},
			PrevFilter: []string{"F", "shift+tab"},
			Quit:       []string{"q", "ctrl+c"},
		},
	}
}
