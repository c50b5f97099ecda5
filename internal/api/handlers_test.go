package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/assist"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/service"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// In-memory stores for handler tests. Only the behaviour the handlers
// exercise is implemented.

type memUserStore struct {
	profiles map[string]*domain.User
	links    map[string]*domain.DeviceLink
}

func (m *memUserStore) CreateProfile(_ context.Context, u *domain.User) error {
	m.profiles[u.UID] = u
	return nil
}

func (m *memUserStore) GetProfile(_ context.Context, uid string) (*domain.User, error) {
	u, ok := m.profiles[uid]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserStore) PutDeviceLink(_ context.Context, l *domain.DeviceLink) error {
	m.links[l.DeviceID] = l
	return nil
}

func (m *memUserStore) GetDeviceLink(_ context.Context, deviceID string) (*domain.DeviceLink, error) {
	l, ok := m.links[deviceID]
	if !ok {
		return nil, store.ErrDeviceLinkNotFound
	}
	return l, nil
}

type memContentStore struct {
	topics []domain.Topic
	cards  map[string][]domain.Card
}

func (m *memContentStore) ListTopics(context.Context) ([]domain.Topic, error) {
	return m.topics, nil
}

func (m *memContentStore) ListCards(_ context.Context, topicID string) ([]domain.Card, error) {
	return m.cards[topicID], nil
}

type memQuizStore struct {
	sessions map[string]*domain.QuizSession
	results  []domain.QuizResult
}

func (m *memQuizStore) PutSession(_ context.Context, s *domain.QuizSession) error {
	m.sessions[s.UID+"|"+s.QuizID] = s
	return nil
}

func (m *memQuizStore) GetSession(_ context.Context, uid, quizID string) (*domain.QuizSession, error) {
	s, ok := m.sessions[uid+"|"+quizID]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return s, nil
}

func (m *memQuizStore) DeleteSession(_ context.Context, uid, quizID string) error {
	delete(m.sessions, uid+"|"+quizID)
	return nil
}

func (m *memQuizStore) PutResult(_ context.Context, r *domain.QuizResult) error {
	m.results = append([]domain.QuizResult{*r}, m.results...)
	return nil
}

func (m *memQuizStore) ListRecentResults(_ context.Context, uid string, limit int) ([]domain.QuizResult, error) {
	var out []domain.QuizResult
	for _, r := range m.results {
		if r.UID == uid {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type memProgressStore struct {
	records map[string]*domain.ProgressRecord
}

func (m *memProgressStore) Put(_ context.Context, uid string, r *domain.ProgressRecord) error {
	m.records[uid+"|"+r.TopicID+"|"+r.ExerciseID] = r
	return nil
}

func (m *memProgressStore) List(_ context.Context, uid, topicID string) ([]domain.ProgressRecord, error) {
	var out []domain.ProgressRecord
	for key, r := range m.records {
		if !strings.HasPrefix(key, uid+"|") {
			continue
		}
		if topicID != "" && r.TopicID != topicID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

type stubAdvisor struct {
	help string
	err  error
}

func (s *stubAdvisor) Advise(context.Context, string, []string) (string, error) {
	return s.help, s.err
}

// apiFixture wires the handlers to in-memory stores behind the same
// routes the server registers.
type apiFixture struct {
	users    *memUserStore
	content  *memContentStore
	quizzes  *memQuizStore
	progress *memProgressStore
	advisor  *stubAdvisor
	router   chi.Router
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		users:    &memUserStore{profiles: map[string]*domain.User{}, links: map[string]*domain.DeviceLink{}},
		content:  &memContentStore{cards: map[string][]domain.Card{}},
		quizzes:  &memQuizStore{sessions: map[string]*domain.QuizSession{}},
		progress: &memProgressStore{records: map[string]*domain.ProgressRecord{}},
		advisor:  &stubAdvisor{help: "try factoring first"},
	}

	quizCfg := config.QuizConfig{SessionTTL: time.Hour, DefaultQuestions: 5}
	userHandler := NewUserHandler(service.NewUserService(f.users, nil), nil)
	contentHandler := NewContentHandler(service.NewContentService(f.content, nil), nil)
	quizHandler := NewQuizHandler(service.NewQuizService(f.users, f.content, f.quizzes, quizCfg, nil), nil)
	reviewHandler := NewReviewHandler(service.NewReviewService(f.users, f.quizzes, f.progress, nil), nil)
	homeworkHandler := NewHomeworkHandler(service.NewHomeworkService(assist.TextExtractor{}, f.advisor, nil), nil)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/bootstrap", userHandler.Bootstrap)
		r.Get("/subjects", contentHandler.GetSubjects)
		r.Get("/topics/{topicID}/cards", contentHandler.GetTopicCards)
		r.Post("/quiz/start", quizHandler.Start)
		r.Post("/quiz/submit", quizHandler.Submit)
		r.Get("/review/next", reviewHandler.ReviewNext)
		r.Post("/progress", reviewHandler.SaveProgress)
		r.Get("/progress", reviewHandler.GetProgress)
		r.Post("/homework/submit", homeworkHandler.Submit)
	})
	f.router = r
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestBootstrapEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/users/bootstrap", BootstrapRequest{DeviceID: "d1"})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody[BootstrapResponse](t, rec)
	assert.True(t, first.IsNew)
	assert.NotEmpty(t, first.UID)

	rec = f.do(t, http.MethodPost, "/api/v1/users/bootstrap", BootstrapRequest{DeviceID: "d1"})
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeBody[BootstrapResponse](t, rec)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.UID, second.UID)
}

func TestBootstrapEndpointEmptyBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/users/bootstrap", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[BootstrapResponse](t, rec)
	assert.True(t, res.IsNew)
}

func TestGetSubjectsEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	f.content.topics = []domain.Topic{
		{ID: "algebra-1", Subject: "maths", Title: "Algebra", EstMinutes: 10},
		{ID: "cells-1", Subject: "biology", Title: "Cells", EstMinutes: 15},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/subjects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	groups := decodeBody[[]domain.SubjectGroup](t, rec)
	require.Len(t, groups, 2)
	assert.Equal(t, "biology", groups[0].Subject)
	assert.Equal(t, "maths", groups[1].Subject)
}

func TestGetTopicCardsUnknownTopicIsEmpty(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/topics/nope/cards", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[TopicCardsResponse](t, rec)
	assert.Equal(t, "nope", res.TopicID)
	assert.Empty(t, res.Cards)
}

func (f *apiFixture) seedQuizUser(t *testing.T) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/users/bootstrap", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	uid := decodeBody[BootstrapResponse](t, rec).UID
	f.content.cards["algebra-1"] = []domain.Card{
		{ID: "c1", Front: "2+2", Back: "4"},
		{ID: "c2", Front: "3*3", Back: "9"},
		{ID: "c3", Front: "10/2", Back: "5"},
	}
	return uid
}

func TestQuizStartValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/quiz/start", map[string]string{"topicId": "algebra-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuizStartUnknownUser(t *testing.T) {
	f := newAPIFixture(t)
	f.content.cards["algebra-1"] = []domain.Card{{ID: "c1", Front: "2+2", Back: "4"}}

	rec := f.do(t, http.MethodPost, "/api/v1/quiz/start", QuizStartRequest{UID: "ghost", TopicID: "algebra-1"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "User not found", res["error"])
}

func TestQuizStartEmptyTopic(t *testing.T) {
	f := newAPIFixture(t)
	uid := f.seedQuizUser(t)

	rec := f.do(t, http.MethodPost, "/api/v1/quiz/start", QuizStartRequest{UID: uid, TopicID: "empty"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizStartAndSubmitRoundTrip(t *testing.T) {
	f := newAPIFixture(t)
	uid := f.seedQuizUser(t)

	rec := f.do(t, http.MethodPost, "/api/v1/quiz/start", QuizStartRequest{UID: uid, TopicID: "algebra-1", NumQuestions: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	started := decodeBody[QuizStartResponse](t, rec)
	require.Len(t, started.Questions, 3)

	// Answer the first correctly and the second wrong; leave the third
	// unanswered.
	q := started.Questions
	submission := QuizSubmitRequest{
		UID:    uid,
		QuizID: started.QuizID,
		Answers: []domain.Answer{
			{QuestionID: q[0].ID, ChoiceIndex: q[0].CorrectIndex},
			{QuestionID: q[1].ID, ChoiceIndex: (q[1].CorrectIndex + 1) % len(q[1].Choices)},
		},
	}
	rec = f.do(t, http.MethodPost, "/api/v1/quiz/submit", submission)
	require.Equal(t, http.StatusOK, rec.Code)
	graded := decodeBody[QuizSubmitResponse](t, rec)
	assert.Equal(t, 1, graded.Score)
	assert.Len(t, graded.Breakdown, 2)
	assert.Equal(t, []string{q[1].ID}, graded.NextSteps.CardIDs)

	// Resubmission hits a consumed session.
	rec = f.do(t, http.MethodPost, "/api/v1/quiz/submit", submission)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizSubmitUnknownQuestion(t *testing.T) {
	f := newAPIFixture(t)
	uid := f.seedQuizUser(t)

	rec := f.do(t, http.MethodPost, "/api/v1/quiz/start", QuizStartRequest{UID: uid, TopicID: "algebra-1", NumQuestions: 2})
	require.Equal(t, http.StatusOK, rec.Code)
	started := decodeBody[QuizStartResponse](t, rec)

	rec = f.do(t, http.MethodPost, "/api/v1/quiz/submit", QuizSubmitRequest{
		UID:     uid,
		QuizID:  started.QuizID,
		Answers: []domain.Answer{{QuestionID: "bogus", ChoiceIndex: 0}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	res := decodeBody[map[string]any](t, rec)
	assert.Contains(t, res["error"], "bogus")
}

func TestReviewNextEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	uid := f.seedQuizUser(t)

	f.quizzes.results = []domain.QuizResult{{
		QuizID: "q1", UID: uid, TopicID: "algebra-1",
		Breakdown: []domain.BreakdownItem{
			{QuestionID: "c2", Correct: false},
			{QuestionID: "c1", Correct: true},
		},
	}}

	rec := f.do(t, http.MethodGet, "/api/v1/review/next?uid="+uid, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[ReviewNextResponse](t, rec)
	require.Len(t, res.Due, 1)
	assert.Equal(t, "algebra-1", res.Due[0].TopicID)
	assert.Equal(t, []string{"c2"}, res.Due[0].CardIDs)
}

func TestReviewNextRequiresUID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/review/next", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewNextUnknownUser(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/review/next?uid=ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProgressEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	uid := f.seedQuizUser(t)

	score := 0.75
	rec := f.do(t, http.MethodPost, "/api/v1/progress", ProgressUpdateRequest{
		UID: uid, TopicID: "algebra-1", ExerciseID: "ex1", Status: "completed", Score: &score,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeBody[domain.ProgressRecord](t, rec)
	assert.False(t, saved.UpdatedAt.IsZero())

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/progress?uid=%s&topicId=algebra-1", uid), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[ProgressGetResponse](t, rec)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "completed", res.Items[0].Status)
	require.NotNil(t, res.Items[0].Score)
	assert.Equal(t, 0.75, *res.Items[0].Score)
}

func TestProgressValidation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/progress", ProgressUpdateRequest{UID: "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHomeworkSubmitEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("uid", "u1"))
	require.NoError(t, mw.WriteField("question", "How do I factorise x^2-4?"))
	part, err := mw.CreateFormFile("files", "working.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("my working"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/homework/submit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[HomeworkSubmitResponse](t, rec)
	assert.Equal(t, []string{"my working"}, res.ExtractedText)
	assert.Contains(t, res.CombinedText, "factorise")
	assert.Equal(t, "try factoring first", res.AIHelp)
	assert.Equal(t, []string{"working.txt"}, res.Files)
	assert.Empty(t, res.Warnings)
}

func TestHomeworkSubmitRequiresUID(t *testing.T) {
	f := newAPIFixture(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("question", "help"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/homework/submit", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
