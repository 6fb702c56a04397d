package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"starthobby-backend/internal/model"
)

// ParseRecommendation validates raw engine output against the
// recommendation schema. The engine is treated as an unreliable text
// source: markdown fences are tolerated, every field is type-checked
// individually, and unknown extra fields are ignored. GeneratedAt is
// stamped locally; any engine-supplied timestamp is untrusted and
// dropped.
func ParseRecommendation(raw string) (*model.RecommendationResult, error) {
	cleaned := stripFences(raw)

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &ErrFormatInvalid{Raw: raw, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	personalityType, err := stringField(payload, "personality_type")
	if err != nil {
		return nil, &ErrFormatInvalid{Raw: raw, Err: err}
	}
	personalitySummary, err := stringField(payload, "personality_summary")
	if err != nil {
		return nil, &ErrFormatInvalid{Raw: raw, Err: err}
	}

	strengths, err := stringSliceField(payload, "strengths")
	if err != nil {
		return nil, &ErrFormatInvalid{Raw: raw, Err: err}
	}

	hobbies, err := hobbyField(payload)
	if err != nil {
		return nil, &ErrFormatInvalid{Raw: raw, Err: err}
	}

	return &model.RecommendationResult{
		PersonalityType:    personalityType,
		PersonalitySummary: personalitySummary,
		Strengths:          strengths,
		SuggestedHobbies:   hobbies,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}

// stripFences removes leading/trailing markdown code fences, optionally
// tagged "json", from an otherwise-JSON reply.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "json") {
		s = s[len("json"):]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func stringField(payload map[string]interface{}, key string) (string, error) {
	v, ok := payload[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}

func stringSliceField(payload map[string]interface{}, key string) ([]string, error) {
	v, ok := payload[key]
	if !ok {
		return nil, fmt.Errorf("missing field %q", key)
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", key)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q element %d is not a string", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func hobbyField(payload map[string]interface{}) ([]model.HobbySuggestion, error) {
	v, ok := payload["suggested_hobbies"]
	if !ok {
		return nil, fmt.Errorf("missing field %q", "suggested_hobbies")
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q is not an array", "suggested_hobbies")
	}
	out := make([]model.HobbySuggestion, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("suggested_hobbies element %d is not an object", i)
		}
		hobby, ok := obj["hobby"].(string)
		if !ok {
			return nil, fmt.Errorf("suggested_hobbies element %d has no string hobby", i)
		}
		reason, ok := obj["reason"].(string)
		if !ok {
			return nil, fmt.Errorf("suggested_hobbies element %d has no string reason", i)
		}
		out = append(out, model.HobbySuggestion{Hobby: hobby, Reason: reason})
	}
	return out, nil
}
