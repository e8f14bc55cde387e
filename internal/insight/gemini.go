package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/rupam1998/clarity-ai-app/internal/models"
	"github.com/rupam1998/clarity-ai-app/internal/utils"
)

// Gemini generates the narrative with the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	backoff utils.Backoff
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("api key required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{
		client:  client,
		model:   model,
		backoff: utils.NewBackoff(500*time.Millisecond, 2),
	}, nil
}

func (g *Gemini) Summary(ctx context.Context, result *models.AnalysisResult) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.2)
	prompt := buildPrompt(result)

	var text string
	err := g.backoff.Do(func(int) error {
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return err
		}
		text, err = extractText(resp)
		return err
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *Gemini) Close() error { return g.client.Close() }

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}
	var parts []string
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, "\n"), nil
}
