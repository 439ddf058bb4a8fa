package words

import (
	"time"
	"unicode"
)

// Status is the learning status of a word, owned by the remote API.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusLearning Status = "learning"
	StatusKnown    Status = "known"

	// StatusAll is the filter wildcard; never stored on a word.
	StatusAll Status = "all"
)

// Valid reports whether s is a storable word status.
func (s Status) Valid() bool {
	switch s {
	case StatusUnknown, StatusLearning, StatusKnown:
		return true
	}
	return false
}

// Word is a vocabulary entry. The remote API owns the record; the client
// treats it as read-only except for status updates and deletion.
type Word struct {
	ID            string    `json:"id"`
	GroupID       string    `json:"groupId"`
	Text          string    `json:"text"`
	Transcription string    `json:"transcription,omitempty"`
	Translation   string    `json:"translation,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	UserImage     bool      `json:"userImage,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Group is a named collection of words.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// IsSimple reports whether text consists only of letters, spaces and commas.
// The build-word game can only decompose such words into letter slots.
func IsSimple(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsLetter(r) && r != ' ' && r != ',' {
			return false
		}
	}
	return true
}
