package dynamo

import (
	"fmt"
	"strings"
)

// Type discriminators carried by every row.
const (
	TypeUser        = "User"
	TypeDeviceLink  = "DeviceLink"
	TypeTopicMeta   = "TopicMeta"
	TypeRevCard     = "RevCard"
	TypeMCQ         = "MCQ"
	TypeQuizSession = "QuizSession"
	TypeQuizResult  = "QuizResult"
	TypeProgress    = "Progress"
)

// Partition keys
func UserPK(uid string) string         { return "USER#" + uid }
func DevicePK(deviceID string) string  { return "DEVICE#" + deviceID }
func SubjectPK(subject string) string  { return "TOPIC#" + subject }
func ContentPK(topicID string) string  { return "CONTENT#" + topicID }

// Sort keys
const (
	ProfileSK  = "PROFILE"
	UserLinkSK = "USER_LINK"
)

func TopicSK(topicID string) string  { return "TOPIC#" + topicID }
func CardSK(cardID string) string    { return "CARD#" + cardID }
func MCQSK(mcqID string) string      { return "MCQ#" + mcqID }
func QuizResultSK(quizID string) string { return "QUIZ#" + quizID }
func QuizSessionSK(quizID string) string {
	return "QUIZ#" + quizID + "#SESSION"
}
func ProgressSK(topicID, exerciseID string) string {
	return "PROGRESS#" + topicID + "#" + exerciseID
}

// Sort-key prefixes for begins_with queries.
const (
	CardSKPrefix     = "CARD#"
	QuizSKPrefix     = "QUIZ#"
	ProgressSKPrefix = "PROGRESS#"
)

// ProgressTopicSKPrefix narrows a progress query to one topic.
func ProgressTopicSKPrefix(topicID string) string {
	return "PROGRESS#" + topicID + "#"
}

// GSI1 keys. TopicMeta rows all share one listing partition; quiz rows
// are findable by quiz ID; progress rows by topic with a sortable
// timestamp.
const TopicListGSI1PK = "TOPIC_LIST"

func TopicListGSI1SK(subject string, ordinal int) string {
	return fmt.Sprintf("%s#%04d", subject, ordinal)
}
func TopicGSI1PK(topicID string) string    { return "TOPIC#" + topicID }
func QuizGSI1PK(quizID string) string      { return "QUIZ#" + quizID }
func UserGSI1SK(uid string) string         { return "USER#" + uid }
func ProgressGSI1PK(topicID string) string { return "PROGRESS#" + topicID }

// ProgressGSI1SK is a zero-padded epoch so lexicographic index order
// matches chronological order.
func ProgressGSI1SK(epochSeconds int64) string {
	return fmt.Sprintf("%010d", epochSeconds)
}

// TrailingID returns everything after the first '#' in a composite
// key, e.g. "TOPIC#algebra-1" -> "algebra-1". Returns the input
// unchanged when it has no '#'.
func TrailingID(key string) string {
	if _, rest, ok := strings.Cut(key, "#"); ok {
		return rest
	}
	return key
}

// QuizIDFromSK extracts the quiz ID from a result or session sort key.
func QuizIDFromSK(sk string) string {
	id := strings.TrimPrefix(sk, QuizSKPrefix)
	return strings.TrimSuffix(id, "#SESSION")
}
