package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
)

func TestNewAdvisorRequiresAPIKey(t *testing.T) {
	_, err := NewAdvisor(context.Background(), config.LLMConfig{ModelName: "gemini-2.0-flash"}, nil)
	assert.Error(t, err)
}

func TestNewAdvisorRequiresModelName(t *testing.T) {
	_, err := NewAdvisor(context.Background(), config.LLMConfig{GeminiAPIKey: "key"}, nil)
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("What is 2+2?", []string{"working: 2+2", "", "  "})

	assert.Contains(t, prompt, "Question:\nWhat is 2+2?")
	assert.Contains(t, prompt, "Attachment 1:\nworking: 2+2")
	assert.NotContains(t, prompt, "Attachment 2")
}
