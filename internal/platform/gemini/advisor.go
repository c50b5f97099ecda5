// Package gemini implements the homework advisor on Google's Gemini
// API via the google.golang.org/genai client.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/assist"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
)

// promptPreamble frames the model as a GCSE study helper. Guidance is
// meant to point at method and next steps, not hand over the answer.
const promptPreamble = `You are a helpful GCSE study assistant. A student has submitted a homework question.
Explain the approach step by step in clear, encouraging language suitable for a GCSE student.
Guide the student towards the answer rather than just stating it.`

// Advisor produces homework guidance using a Gemini model.
type Advisor struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

var _ assist.Advisor = (*Advisor)(nil)

// NewAdvisor creates an Advisor from the LLM configuration. An empty
// API key is a configuration error; callers that want the feature off
// should not construct an Advisor at all.
func NewAdvisor(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Advisor, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("gemini model name cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Advisor{
		client: client,
		model:  cfg.ModelName,
		logger: logger.With(slog.String("component", "gemini_advisor")),
	}, nil
}

// Advise asks the model for guidance on the question plus any text
// extracted from the submission's attachments.
func (a *Advisor) Advise(ctx context.Context, question string, extracts []string) (string, error) {
	prompt := buildPrompt(question, extracts)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating guidance: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model returned no text")
	}

	a.logger.DebugContext(ctx, "guidance generated",
		slog.Int("prompt_chars", len(prompt)),
		slog.Int("response_chars", len(text)))
	return text, nil
}

func buildPrompt(question string, extracts []string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(strings.TrimSpace(question))
	for i, extract := range extracts {
		if strings.TrimSpace(extract) == "" {
			continue
		}
		fmt.Fprintf(&b, "\n\nAttachment %d:\n%s", i+1, strings.TrimSpace(extract))
	}
	return b.String()
}
