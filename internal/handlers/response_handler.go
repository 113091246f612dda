package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/middleware"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

type ResponseHandler struct {
	questionRepo repositories.QuestionRepository
	jdRepo       repositories.JobDescriptionRepository
	responseRepo repositories.ResponseRepository
	storage      services.ObjectStorageService
	transcriber  services.TranscriptionService
	llm          services.LLMService
	maxAudioSize int64
}

func NewResponseHandler(
	questionRepo repositories.QuestionRepository,
	jdRepo repositories.JobDescriptionRepository,
	responseRepo repositories.ResponseRepository,
	storage services.ObjectStorageService,
	transcriber services.TranscriptionService,
	llm services.LLMService,
	maxAudioSize int64,
) *ResponseHandler {
	return &ResponseHandler{
		questionRepo: questionRepo,
		jdRepo:       jdRepo,
		responseRepo: responseRepo,
		storage:      storage,
		transcriber:  transcriber,
		llm:          llm,
		maxAudioSize: maxAudioSize,
	}
}

// HandleSubmit handles POST /questions/:id/responses. Transcription
// failure aborts before any row is written; evaluation failure aborts
// after the response row exists, leaving it unscored.
func (h *ResponseHandler) HandleSubmit(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	ctx := c.UserContext()

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	question, err := h.questionRepo.FindByIDForUser(questionID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Question not found",
		})
	}

	jd, err := h.jdRepo.FindByID(question.JobDescriptionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job description",
		})
	}

	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audio file is required",
		})
	}

	if fileHeader.Size > h.maxAudioSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Audio file size must be less than %d bytes", h.maxAudioSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	audioKey, err := h.storage.StoreAudio(ctx, audio, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to store audio: %v", err),
		})
	}

	transcript, err := h.transcriber.Transcribe(ctx, audio, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to process response: %v", err),
		})
	}

	response := models.Response{
		ID:         uuid.New(),
		QuestionID: question.ID,
		UserID:     userID,
		AudioPath:  audioKey,
		Transcript: transcript,
		CreatedAt:  time.Now(),
	}

	if err := h.responseRepo.Create(&response); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save response",
		})
	}

	evaluation, err := h.llm.EvaluateResponse(ctx, jd.ExtractedText, question.QuestionText, transcript)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to process response: %v", err),
		})
	}

	score := models.ResponseScore{
		ID:         uuid.New(),
		ResponseID: response.ID,

		ScoreConfidence:          evaluation.Scores.Confidence,
		ScoreClarityStructure:    evaluation.Scores.ClarityStructure,
		ScoreTechnicalDepth:      evaluation.Scores.TechnicalDepth,
		ScoreCommunicationSkills: evaluation.Scores.CommunicationSkills,
		ScoreRelevance:           evaluation.Scores.Relevance,

		FeedbackConfidence:          evaluation.Feedback.Confidence,
		FeedbackClarityStructure:    evaluation.Feedback.ClarityStructure,
		FeedbackTechnicalDepth:      evaluation.Feedback.TechnicalDepth,
		FeedbackCommunicationSkills: evaluation.Feedback.CommunicationSkills,
		FeedbackRelevance:           evaluation.Feedback.Relevance,

		OverallComment: evaluation.OverallComment,
		CreatedAt:      time.Now(),
	}

	if err := h.responseRepo.CreateScore(&score); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save response score",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.SubmitResponseResult{
		ResponseID:     response.ID.String(),
		Transcript:     transcript,
		Scores:         evaluation.Scores,
		Feedback:       evaluation.Feedback,
		OverallComment: evaluation.OverallComment,
		CreatedAt:      response.CreatedAt,
	})
}

// HandleList handles GET /questions/:id/responses
func (h *ResponseHandler) HandleList(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question ID format",
		})
	}

	if _, err := h.questionRepo.FindByIDForUser(questionID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Question not found",
		})
	}

	responses, err := h.responseRepo.ListScoredByQuestion(questionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list responses",
		})
	}

	items := make([]models.ResponseListItem, 0, len(responses))
	for _, response := range responses {
		items = append(items, models.ResponseListItem{
			ResponseID: response.ID.String(),
			CreatedAt:  response.CreatedAt,
			Scores: models.ScoreSet{
				Confidence:          response.Score.ScoreConfidence,
				ClarityStructure:    response.Score.ScoreClarityStructure,
				TechnicalDepth:      response.Score.ScoreTechnicalDepth,
				CommunicationSkills: response.Score.ScoreCommunicationSkills,
				Relevance:           response.Score.ScoreRelevance,
			},
		})
	}

	return c.JSON(items)
}
