package rag

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahayak-ai/sahayak/pkg/ai"
	"github.com/sahayak-ai/sahayak/pkg/types"
)

// NO_GROUNDING_MARKER is injected into the prompt when retrieval finds
// nothing, telling the model to answer from general knowledge.
const NO_GROUNDING_MARKER = "No specific information found in the knowledge base."

// FormatGrounding renders retrieved entries into the prompt's knowledge
// block, one paragraph per chapter.
func FormatGrounding(entries []types.KnowledgeEntry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("Chapter: %s - %s", entry.ChapterName, entry.Content))
	}
	return strings.Join(parts, "\n\n")
}

// FormatHistory renders turns as "role: text" lines, oldest first.
func FormatHistory(history []types.ConversationMessage) string {
	if len(history) == 0 {
		return "No previous conversation."
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Message))
	}
	return strings.Join(lines, "\n")
}

// TrimHistory keeps the newest maxTurns turns, then drops the oldest
// remaining turns until the transcript fits tokenBudget for model.
// tokenBudget of zero disables the token check.
func TrimHistory(history []types.ConversationMessage, maxTurns int, tokenBudget int, model string) []types.ConversationMessage {
	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	if tokenBudget <= 0 {
		return history
	}
	for len(history) > 0 {
		tokens, err := ai.NumTokens(FormatHistory(history), model)
		if err != nil {
			slog.Warn("Token count failed, keep history untrimmed", slog.Any("error", err))
			return history
		}
		if tokens <= tokenBudget {
			return history
		}
		history = history[1:]
	}
	return history
}

// RenderPrompt assembles the full generation prompt from the student
// grade, trimmed history, grounding block and question.
func RenderPrompt(grade int, history []types.ConversationMessage, grounding string, question string) string {
	if grounding == "" {
		grounding = NO_GROUNDING_MARKER
	}
	return fmt.Sprintf(`You are a helpful educational assistant for a %dth grade student.

Here is the current conversation history:
%s

Here is some relevant knowledge base information for %dth grade:
%s

Based on the conversation history and the provided knowledge, please answer the user's question: "%s"

Please provide a comprehensive and age-appropriate answer for a %dth grade student. If the knowledge base doesn't contain specific information, use your general knowledge to provide a helpful educational response.`,
		grade, FormatHistory(history), grade, grounding, question, grade)
}
