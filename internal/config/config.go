// Package config loads gibberify settings from YAML and the environment.
package config

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Hyphenator HyphenatorConfig `yaml:"hyphenator"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects the dictionary index. An empty path means the
// bundled dictionaries.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"GIBBERIFY_DICTS"`
}

// HyphenatorConfig selects and tunes the hyphenation oracle.
type HyphenatorConfig struct {
	Kind              string `yaml:"kind"                env:"GIBBERIFY_HYPHENATOR"           env-default:"patterns"`
	RequestsPerMinute int    `yaml:"requests_per_minute" env:"GIBBERIFY_HYPHENATOR_RPM"       env-default:"60"`
	MaxRetries        int    `yaml:"max_retries"         env:"GIBBERIFY_HYPHENATOR_RETRIES"   env-default:"3"`
}

// OpenAIConfig holds settings for the OpenAI oracle.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY"`
	Model   string `yaml:"model"    env:"OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// CacheConfig holds syllable cache settings. Caching is only used in
// front of remote oracles.
type CacheConfig struct {
	TTL      int    `yaml:"ttl"       env:"GIBBERIFY_CACHE_TTL"  env-default:"86400"`
	RedisURL string `yaml:"redis_url" env:"GIBBERIFY_REDIS_URL"`
	File     string `yaml:"file"      env:"GIBBERIFY_CACHE_FILE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"GIBBERIFY_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"GIBBERIFY_LOG_FORMAT" env-default:"text"`
}

// Hyphenator kinds.
const (
	HyphenatorPatterns = "patterns"
	HyphenatorOpenAI   = "openai"
)
