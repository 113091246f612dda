package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildQuestionPrompt("We build billing software.", "Acme", "Backend Engineer")

	assert.Contains(t, prompt, "We build billing software.")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Job Title: Backend Engineer")
	assert.Contains(t, prompt, "exactly 5 behavioral interview questions")
}

func TestBuildEvaluationPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildEvaluationPrompt(
		"We build billing software.",
		"Tell me about a time you led a project.",
		"I led the migration of our billing system.")

	assert.Contains(t, prompt, "We build billing software.")
	assert.Contains(t, prompt, "Tell me about a time you led a project.")
	assert.Contains(t, prompt, "I led the migration of our billing system.")
	assert.Contains(t, prompt, "score 1-10")
}
