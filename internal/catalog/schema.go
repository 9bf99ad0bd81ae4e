package catalog

// courseSchema is the structural contract a course document must meet
// before it is admitted to the catalog. Semantic rules the schema
// cannot express (correct_answer indexing into choices, unique lesson
// IDs) are checked by the loader after unmarshaling.
const courseSchema = `{
  "type": "object",
  "required": ["id", "title", "sections"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "instructor": {"type": "string"},
    "level": {"type": "string"},
    "duration": {"type": "string"},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "items"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "title"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "title": {"type": "string"},
                "content": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "final_exam": {
      "type": "object",
      "required": ["passing_score", "questions"],
      "properties": {
        "passing_score": {"type": "integer", "minimum": 0, "maximum": 100},
        "questions": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["id", "prompt", "choices", "correct_answer"],
            "properties": {
              "id": {"type": "string", "minLength": 1},
              "prompt": {"type": "string"},
              "choices": {"type": "array", "items": {"type": "string"}, "minItems": 1},
              "correct_answer": {"type": "integer", "minimum": 0}
            }
          }
        }
      }
    }
  }
}`
