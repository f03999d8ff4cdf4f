// Package config loads runtime settings for StudyTrack.
//
// Precedence, lowest to highest: built-in defaults, an optional config
// file (YAML), environment variables (optionally supplied via .env).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSubjects is the approved-subject vocabulary used when the
// configuration does not override it (the NCEA subject list).
var DefaultSubjects = []string{
	"English", "Maths", "Biology", "Chemistry", "Physics",
	"History", "Geography", "Economics", "Accounting", "Business Studies",
	"Digital Technologies", "Classical Studies", "Art History", "Drama",
	"Music", "Health", "Physical Education", "Te Reo Māori", "Japanese",
	"Chinese", "French", "Spanish", "German", "Samoan", "Cook Islands Māori",
}

// DefaultCategories is the approved-category vocabulary used when the
// configuration does not override it.
var DefaultCategories = []string{"Maths", "English", "Science", "Other"}

// Config holds runtime settings for the StudyTrack CLI.
type Config struct {
	// DataDir holds the credential file and the per-user session files.
	DataDir string `mapstructure:"data_dir"`
	// UsersFile is the credential file name inside DataDir.
	UsersFile string `mapstructure:"users_file"`
	// Subjects and Categories are the approved vocabularies enforced by
	// session validation.
	Subjects   []string `mapstructure:"approved_subjects"`
	Categories []string `mapstructure:"approved_categories"`
	// HashPasswords switches credential storage from verbatim passwords
	// to Argon2id hashes.
	HashPasswords bool `mapstructure:"hash_passwords"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// UsersPath returns the full path of the credential file.
func (c *Config) UsersPath() string {
	return filepath.Join(c.DataDir, c.UsersFile)
}

// Load builds a Config. cfgFile, when non-empty, names the config file
// explicitly; otherwise config.yaml is looked up in the working directory
// and in ~/.studytrack. A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	// A .env next to the binary may supply environment values.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault("data_dir", ".")
	v.SetDefault("users_file", "users.txt")
	v.SetDefault("approved_subjects", DefaultSubjects)
	v.SetDefault("approved_categories", DefaultCategories)
	v.SetDefault("hash_passwords", false)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".studytrack"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STUDYTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.UsersFile == "" {
		return fmt.Errorf("users_file must not be empty")
	}
	if len(c.Subjects) == 0 {
		return fmt.Errorf("approved_subjects must not be empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("approved_categories must not be empty")
	}
	return nil
}
