package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort          string  `mapstructure:"SERVER_PORT"`
	GeminiAPIKey        string  `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string  `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL       string  `mapstructure:"GEMINI_BASE_URL"`
	ContentLanguage     string  `mapstructure:"CONTENT_LANGUAGE"`
	GenAIRPS            float64 `mapstructure:"GENAI_RPS"`
	GenAITimeoutSeconds int     `mapstructure:"GENAI_TIMEOUT_SECONDS"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	// AutomaticEnv only surfaces keys viper knows about, so every key
	// needs a default, even an empty one.
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("CONTENT_LANGUAGE", "Simplified Chinese (简体中文)")
	viper.SetDefault("GENAI_RPS", 1.0)
	viper.SetDefault("GENAI_TIMEOUT_SECONDS", 60)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
