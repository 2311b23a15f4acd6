package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/firecrawl-web/internal/cost"
)

// APIKeyEnv is the environment variable holding the Firecrawl credential.
const APIKeyEnv = "FIRECRAWL_API_KEY"

// ConfigPathEnv names an explicit config file to load instead of the one in
// the user config directory.
const ConfigPathEnv = "FC_CONFIG"

// ErrMissingAPIKey is returned by RequireAPIKey when APIKeyEnv is unset.
var ErrMissingAPIKey = eris.New(APIKeyEnv + " not set in environment.")

// Config holds the full application configuration.
type Config struct {
	Firecrawl  FirecrawlConfig  `yaml:"firecrawl" mapstructure:"firecrawl"`
	Crawl      CrawlConfig      `yaml:"crawl" mapstructure:"crawl"`
	Screenshot ScreenshotConfig `yaml:"screenshot" mapstructure:"screenshot"`
	Pricing    PricingConfig    `yaml:"pricing" mapstructure:"pricing"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// FirecrawlConfig holds Firecrawl API settings.
type FirecrawlConfig struct {
	Key            string `yaml:"key" mapstructure:"key"`
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs    int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries     int    `yaml:"max_retries" mapstructure:"max_retries"`
	RetryBackoffMs int    `yaml:"retry_backoff_ms" mapstructure:"retry_backoff_ms"`
}

// CrawlConfig configures how crawl jobs are awaited.
type CrawlConfig struct {
	PollIntervalSecs int `yaml:"poll_interval_secs" mapstructure:"poll_interval_secs"`
	PollCapSecs      int `yaml:"poll_cap_secs" mapstructure:"poll_cap_secs"`
	TimeoutSecs      int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ScreenshotConfig configures downloads of remotely hosted screenshots.
type ScreenshotConfig struct {
	UserAgent      string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries     int     `yaml:"max_retries" mapstructure:"max_retries"`
	RetryBackoffMs int     `yaml:"retry_backoff_ms" mapstructure:"retry_backoff_ms"`
	RatePerSec     float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// PricingConfig holds the Firecrawl plan used to price credit usage.
type PricingConfig struct {
	PlanMonthly     float64 `yaml:"plan_monthly" mapstructure:"plan_monthly"`
	CreditsIncluded float64 `yaml:"credits_included" mapstructure:"credits_included"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// RequireAPIKey checks the credential using getenv (os.Getenv in main).
func RequireAPIKey(getenv func(string) string) error {
	if getenv(APIKeyEnv) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file: FC_CONFIG, else <user config dir>/fc/config.yaml. The
	// working directory is never searched.
	v.SetConfigType("yaml")
	explicit := os.Getenv(ConfigPathEnv)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fc"))
		}
	}

	// Environment
	v.SetEnvPrefix("FC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("firecrawl.key", APIKeyEnv); err != nil {
		return nil, eris.Wrap(err, "config: bind api key")
	}

	// Defaults
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v2")
	v.SetDefault("firecrawl.timeout_secs", 60)
	v.SetDefault("firecrawl.max_retries", 3)
	v.SetDefault("firecrawl.retry_backoff_ms", 500)
	v.SetDefault("crawl.poll_interval_secs", 2)
	v.SetDefault("crawl.poll_cap_secs", 15)
	v.SetDefault("crawl.timeout_secs", 600)
	v.SetDefault("screenshot.user_agent", "fc/1.0")
	v.SetDefault("screenshot.timeout_secs", 30)
	v.SetDefault("screenshot.max_retries", 3)
	v.SetDefault("screenshot.retry_backoff_ms", 500)
	v.SetDefault("screenshot.rate_per_sec", 5.0)
	rates := cost.DefaultRates()
	v.SetDefault("pricing.plan_monthly", rates.PlanMonthly)
	v.SetDefault("pricing.credits_included", rates.CreditsIncluded)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || explicit != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Firecrawl.Key == "" {
		problems = append(problems, "firecrawl.key is required (set "+APIKeyEnv+")")
	}
	if u, err := url.Parse(c.Firecrawl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("firecrawl.base_url %q is not an absolute URL", c.Firecrawl.BaseURL))
	}
	if c.Firecrawl.TimeoutSecs <= 0 {
		problems = append(problems, "firecrawl.timeout_secs must be > 0")
	}
	if c.Firecrawl.MaxRetries < 1 {
		problems = append(problems, "firecrawl.max_retries must be >= 1")
	}
	if c.Crawl.PollIntervalSecs <= 0 || c.Crawl.PollCapSecs < c.Crawl.PollIntervalSecs {
		problems = append(problems, "crawl.poll_interval_secs must be > 0 and <= crawl.poll_cap_secs")
	}
	if c.Crawl.TimeoutSecs <= 0 {
		problems = append(problems, "crawl.timeout_secs must be > 0")
	}
	if c.Screenshot.RatePerSec <= 0 {
		problems = append(problems, "screenshot.rate_per_sec must be > 0")
	}

	if c.Pricing.PlanMonthly < 0 || c.Pricing.CreditsIncluded < 0 {
		problems = append(problems, "pricing values must be >= 0")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger. Logs go to stderr so that
// command output on stdout stays pipeable.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.OutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
