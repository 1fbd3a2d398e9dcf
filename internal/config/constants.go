// internal/config/constants.go
package config

// Application information
const (
	AppName    = "opic-practice-portal"
	AppVersion = "0.3.0"
)

// Default configuration values
const (
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultStreakTimezone    = "UTC"
	DefaultSessionGapMinutes = 120
	DefaultQuestionsPerTopic = 3
	DefaultMaxInterests      = 5
	DefaultRandomOversample  = 2
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultOpenAIVoice       = "nova"
	DefaultOpenAIMaxAttempts = 3
	DefaultTargetLanguage    = "english"
)

// DefaultTargetCounts maps a self-assessment level to the number of
// questions a generated test contains. Levels outside this map are
// clamped to level 3 before lookup.
var DefaultTargetCounts = map[int]int{
	1: 10,
	2: 10,
	3: 12,
	4: 12,
	5: 15,
	6: 15,
}
