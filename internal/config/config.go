package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DateLayout = "2006-01-02"

type Config struct {
	Seed        int64        `json:"seed" mapstructure:"seed"`
	RowsPerFile int          `json:"rows_per_file" mapstructure:"rows_per_file"`
	Web         WebConfig    `json:"web" mapstructure:"web"`
	Social      SocialConfig `json:"social" mapstructure:"social"`
}

type WebConfig struct {
	OutputDir    string `json:"output_dir" mapstructure:"output_dir"`
	Start        string `json:"start" mapstructure:"start"`
	End          string `json:"end" mapstructure:"end"`
	Users        int    `json:"users" mapstructure:"users"`
	Sessions     int    `json:"sessions" mapstructure:"sessions"`
	Conversions  int    `json:"conversions" mapstructure:"conversions"`
	Transactions int    `json:"transactions" mapstructure:"transactions"`
}

type SocialConfig struct {
	OutputDir string `json:"output_dir" mapstructure:"output_dir"`
	Start     string `json:"start" mapstructure:"start"`
	End       string `json:"end" mapstructure:"end"`
	Rows      int    `json:"rows,omitempty" mapstructure:"rows"` // 0 means ask on stdin
}

// SetDefaults registers the built-in values on v so that every key is known
// to viper, which also lets environment variables override them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("rows_per_file", 1_000_000)

	v.SetDefault("web.output_dir", "synthetic_data")
	v.SetDefault("web.start", "2020-01-01")
	v.SetDefault("web.end", "2024-12-31")
	v.SetDefault("web.users", 1000)
	v.SetDefault("web.sessions", 5000)
	v.SetDefault("web.conversions", 170)
	v.SetDefault("web.transactions", 210)

	v.SetDefault("social.output_dir", "output")
	v.SetDefault("social.start", "2020-01-01")
	v.SetDefault("social.end", "2024-12-31")
}

// ConfigureEnv makes MOCKDATA_WEB_USERS and friends override config keys.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix("MOCKDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.RowsPerFile < 1 {
		return fmt.Errorf("rows_per_file must be at least 1, got %d", c.RowsPerFile)
	}

	if err := validateRange("web", c.Web.Start, c.Web.End); err != nil {
		return err
	}
	if c.Web.OutputDir == "" {
		return fmt.Errorf("web.output_dir cannot be empty")
	}
	counts := map[string]int{
		"web.users":        c.Web.Users,
		"web.sessions":     c.Web.Sessions,
		"web.conversions":  c.Web.Conversions,
		"web.transactions": c.Web.Transactions,
	}
	for key, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", key, n)
		}
	}

	if err := validateRange("social", c.Social.Start, c.Social.End); err != nil {
		return err
	}
	if c.Social.OutputDir == "" {
		return fmt.Errorf("social.output_dir cannot be empty")
	}
	if c.Social.Rows < 0 {
		return fmt.Errorf("social.rows cannot be negative, got %d", c.Social.Rows)
	}

	return nil
}

func (w WebConfig) Range() (time.Time, time.Time, error) {
	return ParseRange(w.Start, w.End)
}

func (s SocialConfig) Range() (time.Time, time.Time, error) {
	return ParseRange(s.Start, s.End)
}

// ParseRange parses two YYYY-MM-DD dates. The end date covers its whole day.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return from, to.Add(24*time.Hour - time.Second), nil
}

func validateRange(section, start, end string) error {
	from, to, err := ParseRange(start, end)
	if err != nil {
		return fmt.Errorf("%s: %w", section, err)
	}
	if to.Before(from) {
		return fmt.Errorf("%s: end date %s is before start date %s", section, end, start)
	}
	return nil
}
