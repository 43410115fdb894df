package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP status server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Regions    []Region `yaml:"regions" json:"regions" jsonschema:"description=Ordered region list shared with the front end"`
	Categories []string `yaml:"categories" json:"categories" jsonschema:"description=Ordered category keys shared with the front end"`

	Refresh RefreshConfig `yaml:"refresh" json:"refresh" jsonschema:"description=Refresh orchestration settings"`

	Headlines HeadlinesConfig `yaml:"headlines" json:"headlines" jsonschema:"description=Headline search provider configuration"`

	Feeds map[string][]string `yaml:"feeds" json:"feeds" jsonschema:"description=RSS feed URLs per category key"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article summarization"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-article content extraction configuration"`

	Archive ArchiveConfig `yaml:"archive" json:"archive" jsonschema:"description=Run history archive configuration"`
}

// Region maps a fixed region key to its display name used in prompts
type Region struct {
	Key  string `yaml:"key" json:"key" jsonschema:"required,description=Region key (lowercase underscore identifier)"`
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Human readable region name"`
}

// RefreshConfig holds batch scheduling and merge settings
type RefreshConfig struct {
	WindowsPerDay   int           `yaml:"windows_per_day" json:"windows_per_day" jsonschema:"default=6,description=Number of refresh windows per UTC day"`
	BatchSize       int           `yaml:"batch_size" json:"batch_size" jsonschema:"description=Work items per window (0 derives ceil of total/windows)"`
	MaxPerCategory  int           `yaml:"max_per_category" json:"max_per_category" jsonschema:"default=30,description=Maximum retained articles per (region x category) bucket"`
	ArticlesPerItem int           `yaml:"articles_per_item" json:"articles_per_item" jsonschema:"default=5,description=Desired fresh articles per work item"`
	Pace            time.Duration `yaml:"pace" json:"pace" jsonschema:"default=2s,description=Mandatory delay before every external call"`
	OutputFile      string        `yaml:"output_file" json:"output_file" jsonschema:"default=updates.json,description=Path of the published JSON document"`
}

// HeadlinesConfig holds the headline search provider settings
type HeadlinesConfig struct {
	Endpoint  string              `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://newsapi.org/v2/top-headlines,description=Top-headlines API endpoint"`
	APIKey    string              `yaml:"api_key" json:"api_key" jsonschema:"description=API key (supports environment variable expansion)"`
	Countries map[string][]string `yaml:"countries" json:"countries" jsonschema:"description=Country code filters per region key"`
	Timeout   time.Duration       `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout per provider call"`
}

// LLMConfig holds LLM configuration for article summarization
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (supports environment variable expansion)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// ExtractionConfig holds full-article content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full-article extraction before summarization"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Extraction timeout per article"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=200,description=Minimum extracted text length to replace the description"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsgrid/1.0,description=User agent for HTTP requests"`
}

// ArchiveConfig holds the sqlite run history ledger settings
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable run history archive"`
	DSN     string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsgrid.db?mode=rwc,description=SQLite connection string"`
}

// keyRe matches the fixed lowercase underscore identifiers shared with the front end
var keyRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables, credentials are supplied this way
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// setDefaults fills in unset fields
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if len(cfg.Regions) == 0 {
		cfg.Regions = DefaultRegions()
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}

	if cfg.Refresh.WindowsPerDay == 0 {
		cfg.Refresh.WindowsPerDay = 6
	}
	if cfg.Refresh.MaxPerCategory == 0 {
		cfg.Refresh.MaxPerCategory = 30
	}
	if cfg.Refresh.ArticlesPerItem == 0 {
		cfg.Refresh.ArticlesPerItem = 5
	}
	if cfg.Refresh.Pace == 0 {
		cfg.Refresh.Pace = 2 * time.Second
	}
	if cfg.Refresh.OutputFile == "" {
		cfg.Refresh.OutputFile = "updates.json"
	}

	if cfg.Headlines.Endpoint == "" {
		cfg.Headlines.Endpoint = "https://newsapi.org/v2/top-headlines"
	}
	if cfg.Headlines.Timeout == 0 {
		cfg.Headlines.Timeout = 15 * time.Second
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 20 * time.Second
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 200
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Newsgrid/1.0"
	}

	if cfg.Archive.DSN == "" {
		cfg.Archive.DSN = "file:newsgrid.db?mode=rwc"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	for _, r := range cfg.Regions {
		if !keyRe.MatchString(r.Key) {
			return fmt.Errorf("invalid region key %q", r.Key)
		}
		if r.Name == "" {
			return fmt.Errorf("region %q has no display name", r.Key)
		}
	}
	for _, c := range cfg.Categories {
		if !keyRe.MatchString(c) {
			return fmt.Errorf("invalid category key %q", c)
		}
	}
	for cat := range cfg.Feeds {
		if !keyRe.MatchString(cat) {
			return fmt.Errorf("feeds reference invalid category key %q", cat)
		}
	}

	if cfg.Refresh.WindowsPerDay < 1 || cfg.Refresh.WindowsPerDay > 288 {
		return fmt.Errorf("refresh.windows_per_day must be between 1 and 288")
	}
	if cfg.Refresh.BatchSize < 0 {
		return fmt.Errorf("refresh.batch_size must be non-negative")
	}
	if cfg.Refresh.MaxPerCategory < 1 {
		return fmt.Errorf("refresh.max_per_category must be at least 1")
	}
	if cfg.Refresh.Pace < 0 {
		return fmt.Errorf("refresh.pace must be non-negative")
	}

	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// RegionName returns the display name for a region key, the key itself when unknown
func (c *Config) RegionName(key string) string {
	for _, r := range c.Regions {
		if r.Key == key {
			return r.Name
		}
	}
	return key
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// DocumentPath returns the path of the published JSON document
func (c *Config) DocumentPath() string {
	return c.Refresh.OutputFile
}

// DefaultRegions returns the region set shared with the front end
func DefaultRegions() []Region {
	return []Region{
		{Key: "global", Name: "the entire world"},
		{Key: "north_america", Name: "North America"},
		{Key: "europe", Name: "Europe"},
		{Key: "asia", Name: "Asia"},
		{Key: "africa", Name: "Africa"},
		{Key: "oceania", Name: "Oceania"},
		{Key: "south_america", Name: "South America"},
		{Key: "middle_east", Name: "the Middle East"},
		{Key: "southeast_asia", Name: "Southeast Asia"},
		{Key: "north_africa", Name: "North Africa"},
		{Key: "sub_saharan_africa", Name: "Sub-Saharan Africa"},
		{Key: "east_asia", Name: "East Asia"},
		{Key: "south_asia", Name: "South Asia"},
		{Key: "australia_nz", Name: "Australia and New Zealand"},
	}
}

// DefaultCategories returns the category keys shared with the front end
func DefaultCategories() []string {
	return []string{"news", "technology", "finance", "travel", "world", "weather", "blogs"}
}
