package types

import (
	"fmt"
	"strings"
)

type SubjectLabel string

const (
	SUBJECT_MATH    SubjectLabel = "Math"
	SUBJECT_SCIENCE SubjectLabel = "Science"
	SUBJECT_SOCIAL  SubjectLabel = "Social"
	SUBJECT_ENGLISH SubjectLabel = "English"
)

func (s SubjectLabel) String() string {
	return string(s)
}

const (
	GRADE_MIN = 1
	GRADE_MAX = 12
)

// KnowledgeEntry is one chapter of the curated curriculum catalog.
// The catalog is loaded once at startup and never mutated afterwards,
// entry identity is its position within the catalog.
type KnowledgeEntry struct {
	Grade         int    `json:"grade"`
	Subject       string `json:"subject"`
	ChapterNumber int    `json:"chapter_number"`
	ChapterName   string `json:"chapter_name"`
	Content       string `json:"content"`
}

// Validate rejects entries that cannot be trusted at use time.
func (e KnowledgeEntry) Validate() error {
	if e.Grade < GRADE_MIN || e.Grade > GRADE_MAX {
		return fmt.Errorf("grade %d out of range [%d,%d]", e.Grade, GRADE_MIN, GRADE_MAX)
	}
	if strings.TrimSpace(e.Subject) == "" {
		return fmt.Errorf("empty subject")
	}
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("empty content")
	}
	return nil
}

// EmbeddingText renders the canonical text the embedding index is built from.
func (e KnowledgeEntry) EmbeddingText() string {
	return fmt.Sprintf("Grade %d %s: %s - %s", e.Grade, e.Subject, e.ChapterName, e.Content)
}

// MatchSubject implements the loose catalog tagging rule, a requested
// subject matches when it is contained in the entry subject, case folded.
func (e KnowledgeEntry) MatchSubject(subject string) bool {
	if subject == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Subject), strings.ToLower(subject))
}

// CatalogEntry is one record of a file-supplied auxiliary knowledge base.
// Extra JSON fields are ignored on load.
type CatalogEntry struct {
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

func (e CatalogEntry) EmbeddingText() string {
	return fmt.Sprintf("%s: %s", e.Topic, e.Content)
}
