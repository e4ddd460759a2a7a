package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/tomz197/starfall/internal/ability"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Environment keys.
const (
	EnvConfigPath  = "STARFALL_CONFIG"
	EnvShip        = "STARFALL_SHIP"
	EnvConstrained = "STARFALL_CONSTRAINED"
	EnvHighScore   = "STARFALL_HIGHSCORE"
	EnvLogLevel    = "STARFALL_LOG_LEVEL"
	EnvSeed        = "STARFALL_SEED"
	EnvAudio       = "STARFALL_AUDIO"
)

const defaultConfigPath = "starfall.toml"

// Settings are the knobs shared by every front-end.
type Settings struct {
	Ship        string `toml:"ship"`
	Constrained bool   `toml:"constrained"` // Lower spawn pressure for slow terminals
	HighScore   string `toml:"highscore"`   // High score file; empty keeps it in memory
	LogLevel    string `toml:"log_level"`
	Seed        int64  `toml:"seed"` // 0 picks a time-based seed
	Audio       bool   `toml:"audio"`

	SSH SSHSettings `toml:"ssh"`
	Web WebSettings `toml:"web"`
}

// SSHSettings configure cmd/ssh.
type SSHSettings struct {
	Host    string `toml:"host"`
	Port    string `toml:"port"`
	HostKey string `toml:"host_key"`
}

// WebSettings configure cmd/web.
type WebSettings struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	DisplayHost string `toml:"display_host"` // Host shown in the ssh command on the landing page
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Ship:      ability.DefaultShip,
		HighScore: "starfall.hiscore",
		LogLevel:  "info",
		Audio:     true,
		SSH: SSHSettings{
			Host:    "::",
			Port:    "2222",
			HostKey: ".ssh/starfall_ed25519",
		},
		Web: WebSettings{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
	}
}

// Load reads the file named by STARFALL_CONFIG (default starfall.toml) on
// top of the defaults, then applies environment overrides. A missing default
// file is not an error; a missing file named explicitly is.
func Load() (Settings, error) {
	path, explicit := os.LookupEnv(EnvConfigPath)
	if !explicit {
		path = defaultConfigPath
	}

	s, err := LoadFile(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
		s = Defaults()
	}

	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile decodes a TOML settings file over the defaults.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidSettings, undecoded[0].String(), path)
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	s.Ship = GetEnv(EnvShip, s.Ship)
	s.HighScore = GetEnv(EnvHighScore, s.HighScore)
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)

	if v, ok := os.LookupEnv(EnvConstrained); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSettings, EnvConstrained, v)
		}
		s.Constrained = b
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSettings, EnvAudio, v)
		}
		s.Audio = b
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSettings, EnvSeed, v)
		}
		s.Seed = n
	}
	return nil
}

// Validate checks values that would otherwise fail late.
func (s Settings) Validate() error {
	if _, ok := ability.ShipByID(s.Ship); !ok {
		return fmt.Errorf("%w: unknown ship %q", ErrInvalidSettings, s.Ship)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, s.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
