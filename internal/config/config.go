package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jibingeo/next-auth/internal/model"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes environment overrides, e.g. WWW_TAGLINE.
const EnvPrefix = "WWW"

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

type Config struct {
	SiteTitle  string `mapstructure:"siteTitle" yaml:"siteTitle"`
	Tagline    string `mapstructure:"tagline" yaml:"tagline"`
	URL        string `mapstructure:"url" yaml:"url"`
	BaseURL    string `mapstructure:"baseURL" yaml:"baseURL"`
	OutputDir  string `mapstructure:"outputDir" yaml:"outputDir"`
	ContentDir string `mapstructure:"contentDir" yaml:"contentDir"`
	StaticDir  string `mapstructure:"staticDir" yaml:"staticDir"`
	CodeStyle  string `mapstructure:"codeStyle" yaml:"codeStyle"`
	Lang       string `mapstructure:"lang" yaml:"lang"`

	// Source is the config file the values were read from, empty when none was found.
	Source string `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		SiteTitle:  "NextAuth.js",
		Tagline:    "Authentication for Next.js",
		URL:        "https://next-auth.js.org",
		BaseURL:    "/",
		OutputDir:  "public",
		ContentDir: "content",
		StaticDir:  "static",
		CodeStyle:  "github",
		Lang:       "en",
	}
}

// Site returns the title and tagline pages are personalised with.
func (c Config) Site() model.SiteConfig {
	return model.SiteConfig{Title: c.SiteTitle, Tagline: c.Tagline}
}

// Load reads configuration from path, or from ./config.yaml when path is empty,
// layering WWW_* environment variables over the file and the file over defaults.
// A missing ./config.yaml is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("siteTitle", def.SiteTitle)
	v.SetDefault("tagline", def.Tagline)
	v.SetDefault("url", def.URL)
	v.SetDefault("baseURL", def.BaseURL)
	v.SetDefault("outputDir", def.OutputDir)
	v.SetDefault("contentDir", def.ContentDir)
	v.SetDefault("staticDir", def.StaticDir)
	v.SetDefault("codeStyle", def.CodeStyle)
	v.SetDefault("lang", def.Lang)

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		cfg.Source = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, nil
}

// Write stores cfg as YAML at path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
