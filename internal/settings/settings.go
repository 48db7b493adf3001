// Package settings loads runtime settings for the nlplab command from flags,
// an optional YAML file and NLPLAB_* environment variables.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

const envPrefix = "NLPLAB"

// Keys, also used as flag names.
const (
	KeyTables      = "tables"
	KeyStems       = "stems"
	KeyLemmas      = "lemmas"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyAddr        = "addr"
	KeyDelay       = "delay"
	KeyRateLimit   = "rate-limit"
	KeyRateBurst   = "rate-burst"
	KeyCORSOrigins = "cors-origins"
	KeyTimeout     = "timeout"
)

// Settings are the runtime settings of the CLI and server.
type Settings struct {
	TablesPath  string
	StemsPath   string
	LemmasPath  string
	LogLevel    string
	LogFormat   string
	Addr        string
	Delay       bool          // simulate the per-operation processing delay
	RateLimit   float64       // requests per second, 0 disables limiting
	RateBurst   int
	CORSOrigins []string
	Timeout     time.Duration // per-request timeout in the server
}

// New builds a viper instance with defaults, the NLPLAB_ env prefix and
// "-" mapped to "_" in env names (NLPLAB_LOG_LEVEL).
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyDelay, false)
	v.SetDefault(KeyRateLimit, 20.0)
	v.SetDefault(KeyRateBurst, 40)
	v.SetDefault(KeyCORSOrigins, []string{"*"})
	v.SetDefault(KeyTimeout, 10*time.Second)
	return v
}

// Load reads the settings file (if path is set) into v and returns the
// resolved settings.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("settings: read %q: %w", path, err)
		}
	}

	s := &Settings{
		TablesPath:  v.GetString(KeyTables),
		StemsPath:   v.GetString(KeyStems),
		LemmasPath:  v.GetString(KeyLemmas),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		Addr:        v.GetString(KeyAddr),
		Delay:       v.GetBool(KeyDelay),
		RateLimit:   v.GetFloat64(KeyRateLimit),
		RateBurst:   v.GetInt(KeyRateBurst),
		CORSOrigins: v.GetStringSlice(KeyCORSOrigins),
		Timeout:     v.GetDuration(KeyTimeout),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the server cannot run with.
func (s *Settings) Validate() error {
	if s.RateLimit < 0 {
		return fmt.Errorf("settings: negative rate limit %v: %w", s.RateLimit, internalerr.ErrInvalidConfig)
	}
	if s.RateLimit > 0 && s.RateBurst < 1 {
		return fmt.Errorf("settings: rate burst must be at least 1: %w", internalerr.ErrInvalidConfig)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("settings: timeout must be positive: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}
