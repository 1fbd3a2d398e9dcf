// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	// StreakTimezone is the IANA zone used to decide which calendar day an
	// activity falls on.
	StreakTimezone string `mapstructure:"streak_timezone"`
	// SessionGapMinutes is the maximum gap between two test responses that
	// still counts as the same test session.
	SessionGapMinutes int    `mapstructure:"session_gap_minutes"`
	TargetLanguage    string `mapstructure:"target_language"`
}

type SelectionConfig struct {
	QuestionsPerTopic int `mapstructure:"questions_per_topic"`
	MaxInterests      int `mapstructure:"max_interests"`
	RandomOversample  int `mapstructure:"random_oversample"`
	// TargetCounts maps self-assessment level to test size. Filled from
	// DefaultTargetCounts when the config file leaves it empty.
	TargetCounts map[int]int `mapstructure:"target_counts"`
}

type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Voice       string `mapstructure:"voice"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	App       AppConfig       `mapstructure:"app"`
	Selection SelectionConfig `mapstructure:"selection"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- defaults ---
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Log.Format == "" {
		Cfg.Log.Format = DefaultLogFormat
	}
	if Cfg.App.StreakTimezone == "" {
		Cfg.App.StreakTimezone = DefaultStreakTimezone
	}
	if Cfg.App.SessionGapMinutes <= 0 {
		Cfg.App.SessionGapMinutes = DefaultSessionGapMinutes
	}
	if Cfg.App.TargetLanguage == "" {
		Cfg.App.TargetLanguage = DefaultTargetLanguage
	}
	if Cfg.Selection.QuestionsPerTopic <= 0 {
		Cfg.Selection.QuestionsPerTopic = DefaultQuestionsPerTopic
	}
	if Cfg.Selection.MaxInterests <= 0 {
		Cfg.Selection.MaxInterests = DefaultMaxInterests
	}
	if Cfg.Selection.RandomOversample <= 0 {
		Cfg.Selection.RandomOversample = DefaultRandomOversample
	}
	if len(Cfg.Selection.TargetCounts) == 0 {
		Cfg.Selection.TargetCounts = DefaultTargetCounts
	}
	if Cfg.OpenAI.Model == "" {
		Cfg.OpenAI.Model = DefaultOpenAIModel
	}
	if Cfg.OpenAI.Voice == "" {
		Cfg.OpenAI.Voice = DefaultOpenAIVoice
	}
	if Cfg.OpenAI.MaxAttempts <= 0 {
		Cfg.OpenAI.MaxAttempts = DefaultOpenAIMaxAttempts
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")

	return nil
}
