package handlers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/middleware"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

type JobDescriptionHandler struct {
	jdRepo       repositories.JobDescriptionRepository
	questionRepo repositories.QuestionRepository
	storage      services.ObjectStorageService
	pdfParser    services.PDFParserService
	llm          services.LLMService
	maxPDFSize   int64
}

func NewJobDescriptionHandler(
	jdRepo repositories.JobDescriptionRepository,
	questionRepo repositories.QuestionRepository,
	storage services.ObjectStorageService,
	pdfParser services.PDFParserService,
	llm services.LLMService,
	maxPDFSize int64,
) *JobDescriptionHandler {
	return &JobDescriptionHandler{
		jdRepo:       jdRepo,
		questionRepo: questionRepo,
		storage:      storage,
		pdfParser:    pdfParser,
		llm:          llm,
		maxPDFSize:   maxPDFSize,
	}
}

// HandleUpload handles POST /job-descriptions. Question generation
// failure does not fail the request: the job description is still
// returned with its status set to error.
func (h *JobDescriptionHandler) HandleUpload(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	ctx := c.UserContext()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "PDF file is required",
		})
	}

	companyName := c.FormValue("company_name")
	jobTitle := c.FormValue("job_title")
	if companyName == "" || jobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company_name and job_title are required",
		})
	}

	// Validate before any side effect
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File must be a PDF",
		})
	}
	if fileHeader.Size > h.maxPDFSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File size must be less than %d bytes", h.maxPDFSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	key, err := h.storage.StorePDF(ctx, data, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to store job description: %v", err),
		})
	}

	extractedText, err := h.pdfParser.ExtractText(data)
	if err != nil {
		// Cleanup the stored blob so a failed upload leaves no state
		_ = h.storage.Delete(ctx, key)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to extract text from PDF: %v", err),
		})
	}

	jd := models.JobDescription{
		ID:            uuid.New(),
		UserID:        userID,
		CompanyName:   companyName,
		JobTitle:      jobTitle,
		FilePath:      key,
		ExtractedText: extractedText,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.jdRepo.Create(&jd); err != nil {
		_ = h.storage.Delete(ctx, key)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save job description",
		})
	}

	questions, err := h.llm.GenerateQuestions(ctx, extractedText, companyName, jobTitle)
	if err != nil {
		h.markGenerationError(&jd, err.Error())
		return c.Status(fiber.StatusCreated).JSON(jd)
	}

	rows := make([]models.Question, 0, len(questions))
	for _, text := range questions {
		rows = append(rows, models.Question{
			ID:               uuid.New(),
			JobDescriptionID: jd.ID,
			UserID:           userID,
			QuestionText:     text,
			CreatedAt:        time.Now(),
		})
	}

	if err := h.questionRepo.CreateBatch(rows); err != nil {
		h.markGenerationError(&jd, err.Error())
		return c.Status(fiber.StatusCreated).JSON(jd)
	}

	if err := h.jdRepo.MarkQuestionsGenerated(jd.ID); err != nil {
		h.markGenerationError(&jd, err.Error())
		return c.Status(fiber.StatusCreated).JSON(jd)
	}
	jd.Status = models.StatusQuestionsGenerated

	return c.Status(fiber.StatusCreated).JSON(jd)
}

func (h *JobDescriptionHandler) markGenerationError(jd *models.JobDescription, msg string) {
	_ = h.jdRepo.MarkError(jd.ID, msg)
	jd.Status = models.StatusError
	jd.ErrorMessage = msg
}

// HandleList handles GET /job-descriptions
func (h *JobDescriptionHandler) HandleList(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	jds, err := h.jdRepo.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job descriptions",
		})
	}
	if jds == nil {
		jds = []models.JobDescription{}
	}

	return c.JSON(jds)
}

// HandleListQuestions handles GET /job-descriptions/:id/questions
func (h *JobDescriptionHandler) HandleListQuestions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	jdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job description ID format",
		})
	}

	if _, err := h.jdRepo.FindByIDForUser(jdID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job description not found",
		})
	}

	questions, err := h.questionRepo.ListByJobDescription(jdID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list questions",
		})
	}
	if questions == nil {
		questions = []models.Question{}
	}

	return c.JSON(questions)
}
