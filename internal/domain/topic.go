package domain

// Topic is the metadata row for one revision topic within a subject.
// Topics are seeded by the offline loader and read-only at runtime.
type Topic struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	Title      string `json:"title"`
	EstMinutes int    `json:"estMinutes"`
}

// TopicStub is the listing view of a topic, without its subject.
type TopicStub struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	EstMinutes int    `json:"estMinutes"`
}

// SubjectGroup is a subject together with its topics, as returned by
// the grouped topic listing.
type SubjectGroup struct {
	Subject string      `json:"subject"`
	Topics  []TopicStub `json:"topics"`
}

// Validate checks that the Topic has valid data.
func (t *Topic) Validate() error {
	if t.ID == "" {
		return ErrTopicIDEmpty
	}
	return nil
}
