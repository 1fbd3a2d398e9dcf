// internal/ai/ai.go
package ai

import "context"

// AudioFeatures carries the measurable properties of a recorded answer
// that the scorer takes into account alongside the transcript.
type AudioFeatures struct {
	DurationSec float64
}

// ScoreResult is the structured outcome of scoring one response.
type ScoreResult struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}

// Scorer grades a transcript against the question that prompted it.
type Scorer interface {
	Score(ctx context.Context, questionText, transcript string, features AudioFeatures) (*ScoreResult, error)
}

// Synthesizer turns question text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
