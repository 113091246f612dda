package handlers

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"interview-coach/internal/auth"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

const testJWTSecret = "test-secret"

func testToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

type fakeUserRepo struct {
	users     map[uuid.UUID]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

type fakeJobDescriptionRepo struct {
	jds        map[uuid.UUID]*models.JobDescription
	failCreate bool
}

func newFakeJobDescriptionRepo() *fakeJobDescriptionRepo {
	return &fakeJobDescriptionRepo{jds: map[uuid.UUID]*models.JobDescription{}}
}

func (f *fakeJobDescriptionRepo) Create(jd *models.JobDescription) error {
	if f.failCreate {
		return fmt.Errorf("create failed")
	}
	copied := *jd
	f.jds[jd.ID] = &copied
	return nil
}

func (f *fakeJobDescriptionRepo) FindByID(id uuid.UUID) (*models.JobDescription, error) {
	if jd, ok := f.jds[id]; ok {
		copied := *jd
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeJobDescriptionRepo) FindByIDForUser(id, userID uuid.UUID) (*models.JobDescription, error) {
	if jd, ok := f.jds[id]; ok && jd.UserID == userID {
		copied := *jd
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeJobDescriptionRepo) ListByUser(userID uuid.UUID) ([]models.JobDescription, error) {
	var jds []models.JobDescription
	for _, jd := range f.jds {
		if jd.UserID == userID {
			jds = append(jds, *jd)
		}
	}
	sort.Slice(jds, func(i, j int) bool {
		return jds[i].CreatedAt.After(jds[j].CreatedAt)
	})
	return jds, nil
}

func (f *fakeJobDescriptionRepo) MarkQuestionsGenerated(id uuid.UUID) error {
	jd, ok := f.jds[id]
	if !ok {
		return repositories.ErrNotFound
	}
	jd.Status = models.StatusQuestionsGenerated
	return nil
}

func (f *fakeJobDescriptionRepo) MarkError(id uuid.UUID, errorMsg string) error {
	jd, ok := f.jds[id]
	if !ok {
		return repositories.ErrNotFound
	}
	jd.Status = models.StatusError
	jd.ErrorMessage = errorMsg
	return nil
}

type fakeQuestionRepo struct {
	questions  map[uuid.UUID]*models.Question
	failCreate bool
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uuid.UUID]*models.Question{}}
}

func (f *fakeQuestionRepo) CreateBatch(questions []models.Question) error {
	if f.failCreate {
		return fmt.Errorf("create failed")
	}
	for i := range questions {
		copied := questions[i]
		f.questions[copied.ID] = &copied
	}
	return nil
}

func (f *fakeQuestionRepo) FindByIDForUser(id, userID uuid.UUID) (*models.Question, error) {
	if question, ok := f.questions[id]; ok && question.UserID == userID {
		copied := *question
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeQuestionRepo) ListByJobDescription(jobDescriptionID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	for _, question := range f.questions {
		if question.JobDescriptionID == jobDescriptionID {
			questions = append(questions, *question)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].CreatedAt.Before(questions[j].CreatedAt)
	})
	return questions, nil
}

type fakeResponseRepo struct {
	responses map[uuid.UUID]*models.Response
	scores    map[uuid.UUID]*models.ResponseScore
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{
		responses: map[uuid.UUID]*models.Response{},
		scores:    map[uuid.UUID]*models.ResponseScore{},
	}
}

func (f *fakeResponseRepo) Create(response *models.Response) error {
	copied := *response
	f.responses[response.ID] = &copied
	return nil
}

func (f *fakeResponseRepo) CreateScore(score *models.ResponseScore) error {
	copied := *score
	f.scores[score.ResponseID] = &copied
	return nil
}

func (f *fakeResponseRepo) ListScoredByQuestion(questionID uuid.UUID) ([]models.Response, error) {
	var responses []models.Response
	for _, response := range f.responses {
		score, scored := f.scores[response.ID]
		if response.QuestionID != questionID || !scored {
			continue
		}
		copied := *response
		copied.Score = *score
		responses = append(responses, copied)
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].CreatedAt.After(responses[j].CreatedAt)
	})
	return responses, nil
}

type fakeStorage struct {
	objects   map[string][]byte
	failStore bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) StorePDF(_ context.Context, data []byte, _ string) (string, error) {
	return f.store(services.KindPDF, data)
}

func (f *fakeStorage) StoreAudio(_ context.Context, data []byte, _ string) (string, error) {
	return f.store(services.KindAudio, data)
}

func (f *fakeStorage) store(kind string, data []byte) (string, error) {
	if f.failStore {
		return "", fmt.Errorf("store failed")
	}
	key := fmt.Sprintf("%s/%s", kind, uuid.New().String())
	f.objects[key] = data
	return key, nil
}

func (f *fakeStorage) Fetch(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found")
	}
	return data, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) FileURL(_ context.Context, key string) (string, error) {
	return "https://storage.test/" + key, nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(_ []byte) (string, error) {
	return f.text, f.err
}

type fakeLLM struct {
	questions []string
	genErr    error
	eval      *services.EvaluationResult
	evalErr   error
}

func (f *fakeLLM) GenerateQuestions(_ context.Context, _, _, _ string) ([]string, error) {
	return f.questions, f.genErr
}

func (f *fakeLLM) EvaluateResponse(_ context.Context, _, _, _ string) (*services.EvaluationResult, error) {
	return f.eval, f.evalErr
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return f.transcript, f.err
}

func fiveQuestions() []string {
	return []string{
		"Tell me about a time you led a project.",
		"Describe a conflict you resolved on a team.",
		"Give an example of a difficult technical decision.",
		"Tell me about a failure and what you learned.",
		"Describe a time you influenced without authority.",
	}
}

func sampleEvaluation() *services.EvaluationResult {
	return &services.EvaluationResult{
		Scores: models.ScoreSet{
			Confidence:          8,
			ClarityStructure:    7,
			TechnicalDepth:      6,
			CommunicationSkills: 9,
			Relevance:           7,
		},
		Feedback: models.FeedbackSet{
			Confidence:          "Steady delivery throughout.",
			ClarityStructure:    "Clear STAR structure.",
			TechnicalDepth:      "Could name more concrete tools.",
			CommunicationSkills: "Concise and easy to follow.",
			Relevance:           "Well aligned with the role.",
		},
		OverallComment: "Strong answer overall, add more technical detail.",
	}
}
