package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"interview-coach/internal/models"
)

// EvaluationResult is the structured evaluation of one transcribed answer.
type EvaluationResult struct {
	Scores         models.ScoreSet    `json:"scores"`
	Feedback       models.FeedbackSet `json:"feedback"`
	OverallComment string             `json:"overall_comment"`
}

type LLMService interface {
	GenerateQuestions(ctx context.Context, jobText, companyName, jobTitle string) ([]string, error)
	EvaluateResponse(ctx context.Context, jobText, questionText, transcript string) (*EvaluationResult, error)
}

type geminiService struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
}

func NewGeminiService(apiKey, modelName string) (LLMService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		modelName:     modelName,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

type questionsPayload struct {
	Questions []string `json:"questions"`
}

var questionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type:        genai.TypeArray,
			Description: "Exactly 5 behavioral interview questions",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"questions"},
}

var evaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"scores": {
			Type:       genai.TypeObject,
			Properties: scoreDimensions(genai.TypeInteger),
			Required:   dimensionNames(),
		},
		"feedback": {
			Type:       genai.TypeObject,
			Properties: scoreDimensions(genai.TypeString),
			Required:   dimensionNames(),
		},
		"overall_comment": {
			Type:        genai.TypeString,
			Description: "Overall assessment and improvement areas",
		},
	},
	Required: []string{"scores", "feedback", "overall_comment"},
}

func dimensionNames() []string {
	return []string{"confidence", "clarity_structure", "technical_depth", "communication_skills", "relevance"}
}

func scoreDimensions(t genai.Type) map[string]*genai.Schema {
	props := make(map[string]*genai.Schema, 5)
	for _, name := range dimensionNames() {
		props[name] = &genai.Schema{Type: t}
	}
	return props
}

// GenerateQuestions implements LLMService. A result that is missing,
// unparseable, or not exactly 5 questions is an error.
func (g *geminiService) GenerateQuestions(ctx context.Context, jobText, companyName, jobTitle string) ([]string, error) {
	prompt := g.promptBuilder.BuildQuestionPrompt(jobText, companyName, jobTitle)

	raw, err := g.generateJSON(ctx, prompt, questionsSchema, 2048)
	if err != nil {
		return nil, err
	}

	var payload questionsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse questions from response: %w", err)
	}

	if err := validateQuestions(payload.Questions); err != nil {
		return nil, err
	}

	return payload.Questions, nil
}

// EvaluateResponse implements LLMService with the same
// strict-schema-or-fail contract as GenerateQuestions.
func (g *geminiService) EvaluateResponse(ctx context.Context, jobText, questionText, transcript string) (*EvaluationResult, error) {
	prompt := g.promptBuilder.BuildEvaluationPrompt(jobText, questionText, transcript)

	raw, err := g.generateJSON(ctx, prompt, evaluationSchema, 3072)
	if err != nil {
		return nil, err
	}

	var result EvaluationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation from response: %w", err)
	}

	if err := validateEvaluation(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (g *geminiService) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, maxTokens int32) (string, error) {
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  maxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return extractJSON(text), nil
}

func validateQuestions(questions []string) error {
	if len(questions) != 5 {
		return fmt.Errorf("expected exactly 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("question %d is empty", i+1)
		}
	}
	return nil
}

func validateEvaluation(result *EvaluationResult) error {
	scores := map[string]int{
		"confidence":           result.Scores.Confidence,
		"clarity_structure":    result.Scores.ClarityStructure,
		"technical_depth":      result.Scores.TechnicalDepth,
		"communication_skills": result.Scores.CommunicationSkills,
		"relevance":            result.Scores.Relevance,
	}
	for name, score := range scores {
		if score < 1 || score > 10 {
			return fmt.Errorf("score %s out of range: %d", name, score)
		}
	}
	if strings.TrimSpace(result.OverallComment) == "" {
		return fmt.Errorf("evaluation is missing an overall comment")
	}
	return nil
}

// extractJSON strips markdown fencing the model may wrap around the
// JSON body despite the declared response schema.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
