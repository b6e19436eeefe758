// Package agents implements the four-stage generation pipeline that turns a
// preference document into a full weekly plan: Doctor (medical analysis),
// Dietician (nutrition strategy), Chef (meal ideas) and Planner (final
// structured plan). Each stage feeds its text output to the next; only the
// Planner is required to answer in JSON.
package agents

import (
	"strings"

	"fine-ill-eat/internal/llm"
)

// AgentStep records one stage's input and output for the transparency view.
type AgentStep struct {
	Agent  string `json:"agent"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Progress is called before each stage starts so callers can stream status
// to the user. It may be nil.
type Progress func(stage, message string)

// Pipeline runs the agent chain against a text generation backend.
type Pipeline struct {
	textGen llm.TextGenerator
}

// NewPipeline creates a pipeline on top of the given generator.
func NewPipeline(textGen llm.TextGenerator) *Pipeline {
	return &Pipeline{textGen: textGen}
}

// joinOr renders a preference list for a prompt, with a fallback for "none".
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
