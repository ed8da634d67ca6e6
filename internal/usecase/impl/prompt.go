package impl

import (
	"fmt"

	"wander/internal/domain/entity"
)

const defaultMaxActivities = 10

const generationInstructions = `You are a local guide who recommends interesting things to do.
Only recommend places that exist and are open to the public.
Reply with a single JSON object that has an "activities" array and nothing else.
Every activity must include every field of the schema.
Ratings range from 0.0 to 5.0 and review counts are whole numbers.
Distances are in miles from the center of the requested city.`

// activitySchema is the JSON shape every generated record must follow.
const activitySchema = `{
  "type": "object",
  "properties": {
    "activities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "address": {"type": "string", "description": "street address without city or state"},
          "city": {"type": "string"},
          "state": {"type": "string"},
          "category": {"type": "string", "description": "one or two words, e.g. museum, park, restaurant"},
          "rating": {"type": "number", "minimum": 0, "maximum": 5},
          "reviewCount": {"type": "integer", "minimum": 0},
          "distance": {"type": "number", "description": "miles"},
          "phoneNumber": {"type": "string"},
          "description": {"type": "string"},
          "somethingInteresting": {"type": "string"}
        },
        "required": ["name", "address", "city", "state", "category", "rating", "reviewCount",
          "distance", "phoneNumber", "description", "somethingInteresting"]
      }
    }
  },
  "required": ["activities"]
}`

// BuildGenerationRequest turns search parameters into the generator request
func BuildGenerationRequest(params entity.PromptParameters) entity.GenerationRequest {
	limit := params.MaxActivities
	if limit <= 0 {
		limit = defaultMaxActivities
	}

	return entity.GenerationRequest{
		Instructions: generationInstructions,
		Prompt: fmt.Sprintf(
			"Find up to %d fun things to do in or near %s, %s. Mix categories such as museums, parks, food and entertainment.",
			limit, params.City, params.State),
		Schema: activitySchema,
	}
}
