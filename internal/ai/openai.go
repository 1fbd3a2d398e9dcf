// internal/ai/openai.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"opic_practice_portal/internal/config"
	"opic_practice_portal/internal/logging"
	"opic_practice_portal/internal/model"
)

const scoringSystemPrompt = `You are an OPIc rater. Grade the speaker's answer to the given question.
Respond with a JSON object: {"score": <0-100>, "feedback": "<2-3 sentences>", "strengths": ["..."], "suggestions": ["..."]}.
Judge fluency, coherence, grammar and task completion. Be specific and encouraging.`

// OpenAIClient implements Scorer and Synthesizer on the OpenAI API.
type OpenAIClient struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

func NewOpenAIClient(cfg config.OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ai.NewOpenAIClient: %w: api key is empty", model.ErrInvalidInput)
	}
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		cfg:    cfg,
	}, nil
}

func (c *OpenAIClient) Score(ctx context.Context, questionText, transcript string, features AudioFeatures) (*ScoreResult, error) {
	logger := logging.GetLogger(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Question: %s\n\n", questionText)
	fmt.Fprintf(&sb, "Answer transcript: %s\n", transcript)
	if features.DurationSec > 0 {
		fmt.Fprintf(&sb, "\nAnswer duration: %.0f seconds\n", features.DurationSec)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scoringSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
	})
	if err != nil {
		logger.Warn("OpenAI chat completion failed", "error", err)
		return nil, fmt.Errorf("OpenAIClient.Score: %w", model.ErrAIUnavailable)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAIClient.Score: empty choices: %w", model.ErrAIUnavailable)
	}

	var result ScoreResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		logger.Warn("OpenAI returned unparseable scoring payload", "error", err)
		return nil, fmt.Errorf("OpenAIClient.Score: decode: %w", model.ErrAIUnavailable)
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return &result, nil
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	logger := logging.GetLogger(ctx)

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Voice: openai.SpeechVoice(c.cfg.Voice),
		Input: text,
	})
	if err != nil {
		logger.Warn("OpenAI speech synthesis failed", "error", err)
		return nil, fmt.Errorf("OpenAIClient.Synthesize: %w", model.ErrAIUnavailable)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("OpenAIClient.Synthesize: read: %w", model.ErrAIUnavailable)
	}
	return audio, nil
}
