package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"interview-coach/internal/models"
)

func validEvaluation() *EvaluationResult {
	return &EvaluationResult{
		Scores: models.ScoreSet{
			Confidence:          8,
			ClarityStructure:    7,
			TechnicalDepth:      6,
			CommunicationSkills: 9,
			Relevance:           7,
		},
		Feedback: models.FeedbackSet{
			Confidence:          "Steady delivery.",
			ClarityStructure:    "Clear structure.",
			TechnicalDepth:      "Could go deeper.",
			CommunicationSkills: "Easy to follow.",
			Relevance:           "On target.",
		},
		OverallComment: "Solid answer overall.",
	}
}

func TestValidateQuestions(t *testing.T) {
	questions := []string{
		"Tell me about a time you led a project.",
		"Describe a conflict you resolved on a team.",
		"Give an example of a difficult technical decision.",
		"Tell me about a failure and what you learned.",
		"Describe a time you influenced without authority.",
	}

	assert.NoError(t, validateQuestions(questions))
}

func TestValidateQuestions_wrongCount(t *testing.T) {
	assert.Error(t, validateQuestions(nil))
	assert.Error(t, validateQuestions([]string{"one", "two", "three", "four"}))
	assert.Error(t, validateQuestions([]string{"one", "two", "three", "four", "five", "six"}))
}

func TestValidateQuestions_emptyQuestion(t *testing.T) {
	questions := []string{"one", "two", "   ", "four", "five"}
	assert.Error(t, validateQuestions(questions))
}

func TestValidateEvaluation(t *testing.T) {
	assert.NoError(t, validateEvaluation(validEvaluation()))
}

func TestValidateEvaluation_scoreOutOfRange(t *testing.T) {
	low := validEvaluation()
	low.Scores.TechnicalDepth = 0
	assert.Error(t, validateEvaluation(low))

	high := validEvaluation()
	high.Scores.Relevance = 11
	assert.Error(t, validateEvaluation(high))
}

func TestValidateEvaluation_boundaryScores(t *testing.T) {
	result := validEvaluation()
	result.Scores.Confidence = 1
	result.Scores.CommunicationSkills = 10
	assert.NoError(t, validateEvaluation(result))
}

func TestValidateEvaluation_missingOverallComment(t *testing.T) {
	result := validEvaluation()
	result.OverallComment = "  "
	assert.Error(t, validateEvaluation(result))
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"questions":[]}`, extractJSON(`{"questions":[]}`))
	assert.Equal(t, `{"questions":[]}`, extractJSON("```json\n{\"questions\":[]}\n```"))
	assert.Equal(t, `{"questions":[]}`, extractJSON("Here you go:\n{\"questions\":[]}\nHope that helps."))
}

func TestExtractJSON_noObject(t *testing.T) {
	assert.Equal(t, "not json at all", extractJSON("not json at all"))
}
