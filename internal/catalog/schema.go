package catalog

// chapterSchema validates a chapter file before anything touches the store.
var chapterSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"number": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"title": map[string]any{
			"type": "string",
		},
		"words": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"lemma": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"translation": map[string]any{
						"type": "string",
					},
					"part_of_speech": map[string]any{
						"type": "string",
					},
					"occurrences": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"lemma", "translation"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "number", "words"},
	"additionalProperties": false,
}
