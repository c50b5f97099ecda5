package domain

// Card is a revision flashcard: the front is the prompt, the back the
// answer. Cards are seeded by the offline loader and read-only at
// runtime; the quiz engine turns them into multiple-choice questions.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
	Tag   string `json:"tag,omitempty"`
}

// Validate checks that the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}
	if c.Front == "" {
		return ErrCardFrontEmpty
	}
	if c.Back == "" {
		return ErrCardBackEmpty
	}
	return nil
}

// MCQ is a pre-authored multiple-choice question stored alongside a
// topic's cards. The seed loader writes these; the quiz engine
// currently generates its own questions from cards instead.
type MCQ struct {
	ID          string   `json:"id"`
	Stem        string   `json:"stem"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}
