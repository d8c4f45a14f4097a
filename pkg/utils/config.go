package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// PitchforkConfig holds the listing URL and parsing rules for Source A.
type PitchforkConfig struct {
	URL               string `toml:"url"`
	BaseURL           string `toml:"base_url"`
	ItemSelector      string `toml:"item_selector"`
	ContainerSelector string `toml:"container_selector"`
	HeadingSelector   string `toml:"heading_selector"`
	ArtistSelector    string `toml:"artist_selector"`
	ScoreSelector     string `toml:"score_selector"`
	Marker            string `toml:"marker"`
}

// MetacriticConfig holds the listing URL and parsing rules for Source B.
type MetacriticConfig struct {
	URL           string `toml:"url"`
	BaseURL       string `toml:"base_url"`
	ItemSelector  string `toml:"item_selector"`
	ScoreSelector string `toml:"score_selector"`
	Threshold     int    `toml:"threshold"`
}

type Config struct {
	Listen     string           `toml:"listen"`
	Timeout    Duration         `toml:"timeout"`
	LogLevel   string           `toml:"log_level"`
	LogFormat  string           `toml:"log_format"`
	UserAgent  string           `toml:"user_agent"`
	Pitchfork  PitchforkConfig  `toml:"pitchfork"`
	Metacritic MetacriticConfig `toml:"metacritic"`
}

// Duration reads "30s"-style strings from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", string(b), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func Default() Config {
	return Config{
		Listen:    ":8080",
		Timeout:   Duration{30 * time.Second},
		LogLevel:  "info",
		LogFormat: "text",
		UserAgent: defaultUserAgent,
		Pitchfork: PitchforkConfig{
			URL:               "https://pitchfork.com/reviews/albums/",
			BaseURL:           "https://pitchfork.com",
			ItemSelector:      "div.summary-item__icon-review-floating",
			ContainerSelector: "div.summary-item",
			HeadingSelector:   "h2, h3",
			ArtistSelector:    ".summary-item__sub-hed",
			ScoreSelector:     ".summary-item__score, [class*='score']",
			Marker:            "Best New",
		},
		Metacritic: MetacriticConfig{
			URL:           "https://www.metacritic.com/music/",
			BaseURL:       "https://www.metacritic.com",
			ItemSelector:  "div.clamp-metascore",
			ScoreSelector: "div.metascore_w",
			Threshold:     90,
		},
	}
}

// Load reads the TOML file at path on top of Default and then applies
// ALBUMFEED_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ALBUMFEED_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("ALBUMFEED_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ALBUMFEED_PITCHFORK_URL"); v != "" {
		cfg.Pitchfork.URL = v
	}
	if v := os.Getenv("ALBUMFEED_METACRITIC_URL"); v != "" {
		cfg.Metacritic.URL = v
	}
	if v := os.Getenv("ALBUMFEED_METACRITIC_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ALBUMFEED_METACRITIC_THRESHOLD: %w", err)
		}
		cfg.Metacritic.Threshold = n
	}
	if v := os.Getenv("ALBUMFEED_TIMEOUT"); v != "" {
		if err := cfg.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("ALBUMFEED_TIMEOUT: %w", err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Pitchfork.URL) == "" {
		errs = append(errs, errors.New("pitchfork.url is required"))
	}
	if strings.TrimSpace(c.Metacritic.URL) == "" {
		errs = append(errs, errors.New("metacritic.url is required"))
	}
	if c.Metacritic.Threshold < 0 || c.Metacritic.Threshold > 100 {
		errs = append(errs, fmt.Errorf("metacritic.threshold must be within 0..100, got %d", c.Metacritic.Threshold))
	}
	if c.Timeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout.Duration))
	}
	return errors.Join(errs...)
}
