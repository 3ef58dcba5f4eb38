// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd/centerstar)
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/aria-lang/centerstar-go/internal/alignment"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// EnvPrefix is prepended to every environment override, e.g.
// CENTERSTAR_GAP or CENTERSTAR_SERVER_PORT.
const EnvPrefix = "CENTERSTAR"

// Formats lists the accepted values of output.format.
var Formats = []string{"text", "json", "fasta"}

// OutputConfig is settings for writing results
type OutputConfig struct {
	// one of Formats
	Format string `mapstructure:"format"`

	// the column at which FASTA sequences wrap, <= 0 disables wrapping
	Columns int `mapstructure:"columns"`
}

// ServerConfig is settings for the HTTP server
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// score for identical residues
	Match int `mapstructure:"match"`
	// score for differing residues
	Mismatch int `mapstructure:"mismatch"`
	// linear penalty per gap column
	Gap int `mapstructure:"gap"`

	// sequence type: dna, rna, protein, or empty to detect
	Type string `mapstructure:"type"`

	// traceback preference among equally scoring moves
	TieBreak string `mapstructure:"tie-break"`

	// number of co-optimal alignments reported by pairwise
	Paths int `mapstructure:"paths"`

	// log pipeline stage timings
	Verbose bool `mapstructure:"verbose"`

	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
}

// New returns a Viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	scoring := alignment.DefaultScoring()
	v.SetDefault("match", scoring.Match)
	v.SetDefault("mismatch", scoring.Mismatch)
	v.SetDefault("gap", scoring.Gap)
	v.SetDefault("type", "")
	v.SetDefault("tie-break", alignment.DefaultTieBreak.String())
	v.SetDefault("paths", 1)
	v.SetDefault("verbose", false)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.columns", 60)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

// ReadSettings merges a settings file (YAML, JSON or TOML by extension)
// into v.
func ReadSettings(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading settings %s: %w", path, err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes the effective settings of v to path. The file type follows
// the extension.
func Save(v *viper.Viper, path string) error {
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if c.Paths < 1 {
		return fmt.Errorf("paths must be at least 1, got %d", c.Paths)
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	return nil
}

// Options converts the alignment settings for centerstar.Run.
func (c Config) Options() (centerstar.Options, error) {
	scoring, err := alignment.NewScoring(c.Match, c.Mismatch, c.Gap)
	if err != nil {
		return centerstar.Options{}, err
	}

	tieBreak, err := alignment.ParseTieBreak(c.TieBreak)
	if err != nil {
		return centerstar.Options{}, err
	}

	alphabet, err := sequence.ParseAlphabet(c.Type)
	if err != nil {
		return centerstar.Options{}, err
	}

	return centerstar.Options{
		Scoring:  scoring,
		TieBreak: tieBreak,
		Alphabet: alphabet,
		Verbose:  c.Verbose,
	}, nil
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
