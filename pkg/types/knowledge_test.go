package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnowledgeEntryValidate(t *testing.T) {
	valid := KnowledgeEntry{Grade: 5, Subject: "Math", Content: "Fractions."}
	assert.NoError(t, valid.Validate())

	assert.Error(t, KnowledgeEntry{Grade: 0, Subject: "Math", Content: "x"}.Validate())
	assert.Error(t, KnowledgeEntry{Grade: 13, Subject: "Math", Content: "x"}.Validate())
	assert.Error(t, KnowledgeEntry{Grade: 5, Subject: " ", Content: "x"}.Validate())
	assert.Error(t, KnowledgeEntry{Grade: 5, Subject: "Math", Content: ""}.Validate())
}

func TestKnowledgeEntryMatchSubject(t *testing.T) {
	entry := KnowledgeEntry{Grade: 5, Subject: "Social Studies", Content: "x"}

	assert.True(t, entry.MatchSubject(""))
	assert.True(t, entry.MatchSubject("Social"))
	assert.True(t, entry.MatchSubject("social"))
	assert.True(t, entry.MatchSubject("STUDIES"))
	assert.False(t, entry.MatchSubject("Math"))
}

func TestEmbeddingText(t *testing.T) {
	entry := KnowledgeEntry{Grade: 8, Subject: "Math", ChapterName: "Linear Functions", Content: "Systems of equations."}
	assert.Equal(t, "Grade 8 Math: Linear Functions - Systems of equations.", entry.EmbeddingText())

	catalog := CatalogEntry{Topic: "Kerala", Content: "Coastal state."}
	assert.Equal(t, "Kerala: Coastal state.", catalog.EmbeddingText())
}
