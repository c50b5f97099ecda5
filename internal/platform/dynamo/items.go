package dynamo

import (
	"time"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// Item shapes for the single table. Attribute names follow the seeded
// data exactly; GSI1 attributes are written together with the primary
// key so primary and index views never diverge.

type userItem struct {
	PK        string    `dynamodbav:"PK"`
	SK        string    `dynamodbav:"SK"`
	Type      string    `dynamodbav:"Type"`
	DeviceID  string    `dynamodbav:"deviceId,omitempty"`
	CreatedAt time.Time `dynamodbav:"createdAt"`
}

func newUserItem(u *domain.User) userItem {
	return userItem{
		PK:        UserPK(u.UID),
		SK:        ProfileSK,
		Type:      TypeUser,
		DeviceID:  u.DeviceID,
		CreatedAt: u.CreatedAt,
	}
}

func (it userItem) toDomain() *domain.User {
	return &domain.User{
		UID:       TrailingID(it.PK),
		DeviceID:  it.DeviceID,
		CreatedAt: it.CreatedAt,
	}
}

type deviceLinkItem struct {
	PK       string    `dynamodbav:"PK"`
	SK       string    `dynamodbav:"SK"`
	Type     string    `dynamodbav:"Type"`
	UID      string    `dynamodbav:"uid"`
	LinkedAt time.Time `dynamodbav:"linkedAt"`
}

func newDeviceLinkItem(l *domain.DeviceLink) deviceLinkItem {
	return deviceLinkItem{
		PK:       DevicePK(l.DeviceID),
		SK:       UserLinkSK,
		Type:     TypeDeviceLink,
		UID:      l.UID,
		LinkedAt: l.LinkedAt,
	}
}

func (it deviceLinkItem) toDomain() *domain.DeviceLink {
	return &domain.DeviceLink{
		DeviceID: TrailingID(it.PK),
		UID:      it.UID,
		LinkedAt: it.LinkedAt,
	}
}

type topicItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	Type       string `dynamodbav:"Type"`
	Subject    string `dynamodbav:"subject"`
	Title      string `dynamodbav:"title"`
	EstMinutes int    `dynamodbav:"estMinutes"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
}

func newTopicItem(t *domain.Topic, ordinal int) topicItem {
	return topicItem{
		PK:         SubjectPK(t.Subject),
		SK:         TopicSK(t.ID),
		Type:       TypeTopicMeta,
		Subject:    t.Subject,
		Title:      t.Title,
		EstMinutes: t.EstMinutes,
		GSI1PK:     TopicListGSI1PK,
		GSI1SK:     TopicListGSI1SK(t.Subject, ordinal),
	}
}

func (it topicItem) toDomain() domain.Topic {
	title := it.Title
	if title == "" {
		title = TrailingID(it.SK)
	}
	return domain.Topic{
		ID:         TrailingID(it.SK),
		Subject:    it.Subject,
		Title:      title,
		EstMinutes: it.EstMinutes,
	}
}

type cardItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	Type          string `dynamodbav:"Type"`
	Front         string `dynamodbav:"front"`
	Back          string `dynamodbav:"back"`
	DifficultyTag string `dynamodbav:"difficultyTag,omitempty"`
	GSI1PK        string `dynamodbav:"GSI1PK"`
	GSI1SK        string `dynamodbav:"GSI1SK"`
}

func newCardItem(topicID string, c *domain.Card) cardItem {
	return cardItem{
		PK:            ContentPK(topicID),
		SK:            CardSK(c.ID),
		Type:          TypeRevCard,
		Front:         c.Front,
		Back:          c.Back,
		DifficultyTag: c.Tag,
		GSI1PK:        TopicGSI1PK(topicID),
		GSI1SK:        CardSK(c.ID),
	}
}

func (it cardItem) toDomain() domain.Card {
	return domain.Card{
		ID:    TrailingID(it.SK),
		Front: it.Front,
		Back:  it.Back,
		Tag:   it.DifficultyTag,
	}
}

type mcqItem struct {
	PK          string   `dynamodbav:"PK"`
	SK          string   `dynamodbav:"SK"`
	Type        string   `dynamodbav:"Type"`
	Stem        string   `dynamodbav:"stem"`
	Choices     []string `dynamodbav:"choices"`
	Answer      int      `dynamodbav:"answer"`
	Explanation string   `dynamodbav:"explanation,omitempty"`
	GSI1PK      string   `dynamodbav:"GSI1PK"`
	GSI1SK      string   `dynamodbav:"GSI1SK"`
}

func newMCQItem(topicID string, q *domain.MCQ) mcqItem {
	return mcqItem{
		PK:          ContentPK(topicID),
		SK:          MCQSK(q.ID),
		Type:        TypeMCQ,
		Stem:        q.Stem,
		Choices:     q.Choices,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		GSI1PK:      TopicGSI1PK(topicID),
		GSI1SK:      MCQSK(q.ID),
	}
}

type questionItem struct {
	ID           string   `dynamodbav:"id"`
	Stem         string   `dynamodbav:"stem"`
	Choices      []string `dynamodbav:"choices"`
	CorrectIndex int      `dynamodbav:"correctIndex"`
}

type sessionItem struct {
	PK        string         `dynamodbav:"PK"`
	SK        string         `dynamodbav:"SK"`
	Type      string         `dynamodbav:"Type"`
	TopicID   string         `dynamodbav:"topicId"`
	Questions []questionItem `dynamodbav:"questions"`
	CreatedAt time.Time      `dynamodbav:"createdAt"`
	ExpiresAt time.Time      `dynamodbav:"expiresAt,unixtime"`
	GSI1PK    string         `dynamodbav:"GSI1PK"`
	GSI1SK    string         `dynamodbav:"GSI1SK"`
}

func newSessionItem(s *domain.QuizSession) sessionItem {
	questions := make([]questionItem, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = questionItem{
			ID:           q.ID,
			Stem:         q.Stem,
			Choices:      q.Choices,
			CorrectIndex: q.CorrectIndex,
		}
	}
	return sessionItem{
		PK:        UserPK(s.UID),
		SK:        QuizSessionSK(s.QuizID),
		Type:      TypeQuizSession,
		TopicID:   s.TopicID,
		Questions: questions,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		GSI1PK:    QuizGSI1PK(s.QuizID),
		GSI1SK:    UserGSI1SK(s.UID),
	}
}

func (it sessionItem) toDomain() *domain.QuizSession {
	questions := make([]domain.Question, len(it.Questions))
	for i, q := range it.Questions {
		questions[i] = domain.Question{
			ID:           q.ID,
			Stem:         q.Stem,
			Choices:      q.Choices,
			CorrectIndex: q.CorrectIndex,
		}
	}
	return &domain.QuizSession{
		QuizID:    QuizIDFromSK(it.SK),
		UID:       TrailingID(it.PK),
		TopicID:   it.TopicID,
		Questions: questions,
		CreatedAt: it.CreatedAt,
		ExpiresAt: it.ExpiresAt,
	}
}

type breakdownItem struct {
	QuestionID   string `dynamodbav:"questionId"`
	Correct      bool   `dynamodbav:"correct"`
	CorrectIndex int    `dynamodbav:"correctIndex"`
	Explanation  string `dynamodbav:"explanation,omitempty"`
}

type answerItem struct {
	QuestionID  string `dynamodbav:"questionId"`
	ChoiceIndex int    `dynamodbav:"choiceIndex"`
}

type resultItem struct {
	PK          string          `dynamodbav:"PK"`
	SK          string          `dynamodbav:"SK"`
	Type        string          `dynamodbav:"Type"`
	TopicID     string          `dynamodbav:"topicId"`
	Score       int             `dynamodbav:"score"`
	Breakdown   []breakdownItem `dynamodbav:"breakdown"`
	Answers     []answerItem    `dynamodbav:"answers"`
	CompletedAt time.Time       `dynamodbav:"completedAt"`
	GSI1PK      string          `dynamodbav:"GSI1PK"`
	GSI1SK      string          `dynamodbav:"GSI1SK"`
}

func newResultItem(r *domain.QuizResult) resultItem {
	breakdown := make([]breakdownItem, len(r.Breakdown))
	for i, b := range r.Breakdown {
		breakdown[i] = breakdownItem{
			QuestionID:   b.QuestionID,
			Correct:      b.Correct,
			CorrectIndex: b.CorrectIndex,
			Explanation:  b.Explanation,
		}
	}
	answers := make([]answerItem, len(r.Answers))
	for i, a := range r.Answers {
		answers[i] = answerItem{QuestionID: a.QuestionID, ChoiceIndex: a.ChoiceIndex}
	}
	return resultItem{
		PK:          UserPK(r.UID),
		SK:          QuizResultSK(r.QuizID),
		Type:        TypeQuizResult,
		TopicID:     r.TopicID,
		Score:       r.Score,
		Breakdown:   breakdown,
		Answers:     answers,
		CompletedAt: r.CompletedAt,
		GSI1PK:      QuizGSI1PK(r.QuizID),
		GSI1SK:      UserGSI1SK(r.UID),
	}
}

func (it resultItem) toDomain() domain.QuizResult {
	breakdown := make([]domain.BreakdownItem, len(it.Breakdown))
	for i, b := range it.Breakdown {
		breakdown[i] = domain.BreakdownItem{
			QuestionID:   b.QuestionID,
			Correct:      b.Correct,
			CorrectIndex: b.CorrectIndex,
			Explanation:  b.Explanation,
		}
	}
	answers := make([]domain.Answer, len(it.Answers))
	for i, a := range it.Answers {
		answers[i] = domain.Answer{QuestionID: a.QuestionID, ChoiceIndex: a.ChoiceIndex}
	}
	return domain.QuizResult{
		QuizID:      QuizIDFromSK(it.SK),
		UID:         TrailingID(it.PK),
		TopicID:     it.TopicID,
		Score:       it.Score,
		Breakdown:   breakdown,
		Answers:     answers,
		CompletedAt: it.CompletedAt,
	}
}

type progressItem struct {
	PK         string         `dynamodbav:"PK"`
	SK         string         `dynamodbav:"SK"`
	Type       string         `dynamodbav:"Type"`
	TopicID    string         `dynamodbav:"topicId"`
	ExerciseID string         `dynamodbav:"exerciseId"`
	Status     string         `dynamodbav:"status"`
	Score      *float64       `dynamodbav:"score,omitempty"`
	Meta       map[string]any `dynamodbav:"meta,omitempty"`
	UpdatedAt  time.Time      `dynamodbav:"updatedAt"`
	GSI1PK     string         `dynamodbav:"GSI1PK"`
	GSI1SK     string         `dynamodbav:"GSI1SK"`
}

func newProgressItem(uid string, p *domain.ProgressRecord) progressItem {
	return progressItem{
		PK:         UserPK(uid),
		SK:         ProgressSK(p.TopicID, p.ExerciseID),
		Type:       TypeProgress,
		TopicID:    p.TopicID,
		ExerciseID: p.ExerciseID,
		Status:     p.Status,
		Score:      p.Score,
		Meta:       p.Meta,
		UpdatedAt:  p.UpdatedAt,
		GSI1PK:     ProgressGSI1PK(p.TopicID),
		GSI1SK:     ProgressGSI1SK(p.UpdatedAt.Unix()),
	}
}

func (it progressItem) toDomain() domain.ProgressRecord {
	return domain.ProgressRecord{
		TopicID:    it.TopicID,
		ExerciseID: it.ExerciseID,
		Status:     it.Status,
		Score:      it.Score,
		Meta:       it.Meta,
		UpdatedAt:  it.UpdatedAt,
	}
}
