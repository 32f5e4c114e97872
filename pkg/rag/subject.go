package rag

import (
	"strings"

	"github.com/sahayak-ai/sahayak/pkg/types"
)

// subjectRules is checked in order, the first subject with a keyword hit
// wins. Math outranks Science, Science outranks Social studies, and so on.
var subjectRules = []struct {
	Label    types.SubjectLabel
	Keywords []string
}{
	{
		Label: types.SUBJECT_MATH,
		Keywords: []string{
			"math", "algebra", "geometry", "equation", "theorem", "fraction",
			"decimal", "multiplication", "division", "linear", "function",
			"solve", "+",
		},
	},
	{
		Label: types.SUBJECT_SCIENCE,
		Keywords: []string{
			"science", "biology", "physics", "chemistry", "ecosystem",
			"water cycle", "photosynthesis", "energy", "motion", "cell",
			"atom", "plant", "grow",
		},
	},
	{
		Label: types.SUBJECT_SOCIAL,
		Keywords: []string{
			"history", "war", "ancient", "revolution", "civil war",
			"geography", "culture", "government", "social",
		},
	},
	{
		Label: types.SUBJECT_ENGLISH,
		Keywords: []string{
			"english", "literature", "grammar", "writing", "poem", "story",
			"reading",
		},
	},
}

// InferSubject maps a free-form question to one curriculum subject using
// case-insensitive substring matching. Questions matching nothing fall
// back to English.
func InferSubject(question string) types.SubjectLabel {
	lowered := strings.ToLower(question)
	for _, rule := range subjectRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Label
			}
		}
	}
	return types.SUBJECT_ENGLISH
}
