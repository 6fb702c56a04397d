package llm

import (
	"strings"
	"testing"

	"starthobby-backend/internal/model"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	pairs := []model.QAPair{
		{Question: "Do you enjoy the outdoors?", Answer: "Yes"},
		{Question: "Do you prefer working alone?", Answer: "No"},
	}

	first := BuildPrompt(pairs)
	second := BuildPrompt(pairs)
	if first != second {
		t.Fatal("identical QA pairs must produce byte-identical prompts")
	}
}

func TestBuildPrompt_EmbedsPairsAndSchema(t *testing.T) {
	pairs := []model.QAPair{
		{Question: "Do you enjoy the outdoors?", Answer: "Yes"},
	}
	prompt := BuildPrompt(pairs)

	if !strings.Contains(prompt, `"question":"Do you enjoy the outdoors?"`) {
		t.Fatalf("prompt missing machine-readable question: %s", prompt)
	}
	if !strings.Contains(prompt, `"answer":"Yes"`) {
		t.Fatalf("prompt missing machine-readable answer: %s", prompt)
	}
	for _, key := range []string{"personality_type", "personality_summary", "strengths", "suggested_hobbies", "generated_at"} {
		if !strings.Contains(prompt, key) {
			t.Fatalf("prompt missing schema key %q", key)
		}
	}
	if !strings.Contains(prompt, "no markdown fences") {
		t.Fatal("prompt must forbid fenced output")
	}
}

func TestBuildPrompt_OrderMatters(t *testing.T) {
	a := []model.QAPair{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}}
	b := []model.QAPair{{Question: "Q2", Answer: "A2"}, {Question: "Q1", Answer: "A1"}}

	if BuildPrompt(a) == BuildPrompt(b) {
		t.Fatal("pair order must be reflected in the prompt")
	}
}
