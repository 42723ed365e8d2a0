package provider

// analysisPrompt is the system prompt shared by the model backends.
const analysisPrompt = `You are an expert meeting analyst. Analyze the meeting transcript and extract structured information.

Respond with a JSON object containing exactly these fields:
- "summary": executive summary of the meeting (2-4 sentences)
- "key_topics": main subjects discussed (array of short strings)
- "action_items": array of objects with "task", "assignee" (or "unknown"), "due_date" (string or null), "priority" ("high"/"medium"/"low"), "context"
- "decisions": array of objects with "decision", "made_by", "rationale", "impact" ("high"/"medium"/"low")
- "risks": array of objects with "risk", "impact", "likelihood" ("high"/"medium"/"low"), "mitigation", "owner" (string or null)
- "user_stories": array of objects with "story", "acceptance_criteria" (array of strings), "priority"
- "participants": people present or mentioned (array of names)
- "next_steps": planned follow-up activity (array of strings)
- "sentiment": overall tone, one of "positive", "neutral", "negative", "mixed"

Base every field strictly on the transcript. Use empty arrays for sections with no content. Respond ONLY with the JSON object, no additional text.`

// responseSchema constrains local model generation to the summary
// shape. Serialized into the request's format field.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary":    map[string]any{"type": "string"},
		"key_topics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"action_items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"task":     map[string]any{"type": "string"},
					"assignee": map[string]any{"type": "string"},
					"due_date": map[string]any{"type": []string{"string", "null"}},
					"priority": map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
					"context":  map[string]any{"type": "string"},
				},
				"required": []string{"task"},
			},
		},
		"decisions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"decision":  map[string]any{"type": "string"},
					"made_by":   map[string]any{"type": "string"},
					"rationale": map[string]any{"type": "string"},
					"impact":    map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
				},
				"required": []string{"decision"},
			},
		},
		"risks": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"risk":       map[string]any{"type": "string"},
					"impact":     map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
					"likelihood": map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
					"mitigation": map[string]any{"type": "string"},
					"owner":      map[string]any{"type": []string{"string", "null"}},
				},
				"required": []string{"risk"},
			},
		},
		"user_stories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"story":               map[string]any{"type": "string"},
					"acceptance_criteria": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"priority":            map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
				},
				"required": []string{"story"},
			},
		},
		"participants": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"next_steps":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"sentiment":    map[string]any{"type": "string", "enum": []string{"positive", "neutral", "negative", "mixed"}},
	},
	"required": []string{"summary", "key_topics", "participants", "sentiment"},
}
