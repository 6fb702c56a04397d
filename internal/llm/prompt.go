package llm

import (
	"encoding/json"
	"fmt"

	"starthobby-backend/internal/model"
)

const promptTemplate = `You are a personality and hobby recommendation assistant.
A user completed a personality quiz. Their answers are given below as a JSON array of question/answer pairs:

%s

Based on these answers, respond with ONLY a single JSON object, no surrounding prose and no markdown fences, matching exactly this schema:
{"personality_type": string, "personality_summary": string, "strengths": [string], "suggested_hobbies": [{"hobby": string, "reason": string}], "generated_at": string}

Suggest 3 to 5 hobbies. Each reason must refer to the user's answers.`

// BuildPrompt renders the evaluation prompt for an ordered sequence of
// resolved question/answer pairs. Identical input produces byte-identical
// output.
func BuildPrompt(pairs []model.QAPair) string {
	encoded, err := json.Marshal(pairs)
	if err != nil {
		// QAPair contains only strings; Marshal cannot fail on it.
		encoded = []byte("[]")
	}
	return fmt.Sprintf(promptTemplate, string(encoded))
}
