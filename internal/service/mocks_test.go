package service

import (
	"context"
	"strings"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// In-memory store fakes. Each holds an optional forced error so tests
// can exercise infrastructure failure paths.

type fakeUserStore struct {
	profiles map[string]*domain.User
	links    map[string]*domain.DeviceLink
	err      error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		profiles: make(map[string]*domain.User),
		links:    make(map[string]*domain.DeviceLink),
	}
}

func (f *fakeUserStore) CreateProfile(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.profiles[user.UID] = user
	return nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, uid string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.profiles[uid]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) PutDeviceLink(_ context.Context, link *domain.DeviceLink) error {
	if f.err != nil {
		return f.err
	}
	f.links[link.DeviceID] = link
	return nil
}

func (f *fakeUserStore) GetDeviceLink(_ context.Context, deviceID string) (*domain.DeviceLink, error) {
	if f.err != nil {
		return nil, f.err
	}
	link, ok := f.links[deviceID]
	if !ok {
		return nil, store.ErrDeviceLinkNotFound
	}
	return link, nil
}

type fakeContentStore struct {
	topics []domain.Topic
	cards  map[string][]domain.Card
	err    error
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{cards: make(map[string][]domain.Card)}
}

func (f *fakeContentStore) ListTopics(_ context.Context) ([]domain.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.topics, nil
}

func (f *fakeContentStore) ListCards(_ context.Context, topicID string) ([]domain.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cards[topicID], nil
}

type fakeQuizStore struct {
	sessions map[string]*domain.QuizSession
	// results is kept newest first, matching the store's descending
	// key-order read.
	results      []domain.QuizResult
	putResultErr error
	deleteErr    error
	deletes      int
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{sessions: make(map[string]*domain.QuizSession)}
}

func sessionKey(uid, quizID string) string { return uid + "|" + quizID }

func (f *fakeQuizStore) PutSession(_ context.Context, session *domain.QuizSession) error {
	f.sessions[sessionKey(session.UID, session.QuizID)] = session
	return nil
}

func (f *fakeQuizStore) GetSession(_ context.Context, uid, quizID string) (*domain.QuizSession, error) {
	session, ok := f.sessions[sessionKey(uid, quizID)]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeQuizStore) DeleteSession(_ context.Context, uid, quizID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	delete(f.sessions, sessionKey(uid, quizID))
	return nil
}

func (f *fakeQuizStore) PutResult(_ context.Context, result *domain.QuizResult) error {
	if f.putResultErr != nil {
		return f.putResultErr
	}
	f.results = append([]domain.QuizResult{*result}, f.results...)
	return nil
}

func (f *fakeQuizStore) ListRecentResults(_ context.Context, uid string, limit int) ([]domain.QuizResult, error) {
	out := make([]domain.QuizResult, 0, limit)
	for _, r := range f.results {
		if r.UID != uid {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeProgressStore struct {
	records map[string]*domain.ProgressRecord
	err     error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]*domain.ProgressRecord)}
}

func (f *fakeProgressStore) Put(_ context.Context, uid string, record *domain.ProgressRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records[uid+"|"+record.TopicID+"|"+record.ExerciseID] = record
	return nil
}

func (f *fakeProgressStore) List(_ context.Context, uid, topicID string) ([]domain.ProgressRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ProgressRecord
	for key, record := range f.records {
		if !strings.HasPrefix(key, uid+"|") {
			continue
		}
		if topicID != "" && record.TopicID != topicID {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}

// seqSampler is a deterministic Sampler: identity permutations and a
// no-op shuffle. With it, StartQuiz selects cards in store order and
// leaves each question's correct choice in the last position.
type seqSampler struct{}

func (seqSampler) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (seqSampler) Shuffle(int, func(i, j int)) {}

// Interface conformance for the fakes.
var (
	_ store.UserStore     = (*fakeUserStore)(nil)
	_ store.ContentStore  = (*fakeContentStore)(nil)
	_ store.QuizStore     = (*fakeQuizStore)(nil)
	_ store.ProgressStore = (*fakeProgressStore)(nil)
)
