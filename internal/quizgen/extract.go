package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrNoJSONArray indicates the model response contained no parseable JSON
// array. Callers treat this the same as any other generation failure.
var ErrNoJSONArray = fmt.Errorf("no JSON array found in generation response")

// questionBatchSchema gates the extracted payload: it must be a non-empty
// array of objects. Field-level repair is the normalizer's job, not the
// schema's, so individual fields are deliberately unconstrained here.
var questionBatchSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "object"},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// ExtractQuestions pulls a question array out of the model's free-text
// response and normalizes it into QuizQuestion values.
//
// Extraction is strict: the substring from the first '[' to the last ']'
// must parse as a JSON array of objects, otherwise the whole response is
// rejected. Normalization is the opposite — it never fails; malformed
// fields degrade to defaults question by question.
func ExtractQuestions(raw string, topics []string) ([]model.QuizQuestion, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONArray
	}

	payload := []byte(raw[start : end+1])

	var parsed any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONArray, err)
	}

	schema, err := batchSchema()
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONArray, err)
	}

	items := parsed.([]any)
	questions := make([]model.QuizQuestion, 0, len(items))
	for i, item := range items {
		// Shape gate above guarantees each item is an object.
		questions = append(questions, normalizeQuestion(item.(map[string]any), i+1, topics))
	}

	return questions, nil
}

// normalizeQuestion coerces one untrusted question object into the fixed
// QuizQuestion shape, substituting defaults for anything missing or
// malformed. The model's own "id" is ignored: ids are always the 1-based
// position in the batch.
func normalizeQuestion(obj map[string]any, position int, topics []string) model.QuizQuestion {
	q := model.QuizQuestion{
		ID:            position,
		Question:      stringField(obj, "question", fmt.Sprintf("Question %d", position)),
		Options:       optionsField(obj),
		Explanation:   stringField(obj, "explanation", "No explanation provided"),
		Difficulty:    difficultyField(obj),
		Topic:         stringField(obj, "topic", defaultTopic(topics)),
		CorrectAnswer: model.SingleAnswer(0),
	}

	// "missing" and "zero" must stay distinguishable: only an absent or
	// unparseable correctAnswer falls back to index 0.
	if rawAnswer, ok := obj["correctAnswer"]; ok {
		if key, ok := parseAnswerKey(rawAnswer); ok && key.InRange(len(q.Options)) {
			q.CorrectAnswer = key
		}
	}

	return q
}

func stringField(obj map[string]any, key, fallback string) string {
	if s, ok := obj[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func optionsField(obj map[string]any) []string {
	raw, ok := obj["options"].([]any)
	if !ok || len(raw) == 0 {
		return []string{"Option A", "Option B", "Option C", "Option D"}
	}
	options := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			options = append(options, s)
		} else {
			options = append(options, fmt.Sprint(v))
		}
	}
	return options
}

func difficultyField(obj map[string]any) string {
	switch obj["difficulty"] {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return obj["difficulty"].(string)
	default:
		return model.DifficultyMedium
	}
}

func defaultTopic(topics []string) string {
	if len(topics) > 0 {
		return topics[0]
	}
	return "General"
}

// parseAnswerKey accepts a JSON number or array of numbers. Fractional
// values are rejected so 1.5 does not silently become option 1.
func parseAnswerKey(v any) (model.AnswerKey, bool) {
	switch val := v.(type) {
	case float64:
		if val != float64(int(val)) {
			return model.AnswerKey{}, false
		}
		return model.SingleAnswer(int(val)), true
	case []any:
		indices := make([]int, 0, len(val))
		for _, item := range val {
			f, ok := item.(float64)
			if !ok || f != float64(int(f)) {
				return model.AnswerKey{}, false
			}
			indices = append(indices, int(f))
		}
		if len(indices) == 0 {
			return model.AnswerKey{}, false
		}
		return model.MultiAnswer(indices...), true
	default:
		return model.AnswerKey{}, false
	}
}

func batchSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(questionBatchSchema)
		if err != nil {
			compileSchemaError = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileSchemaError = err
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-batch.json", def); err != nil {
			compileSchemaError = err
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://question-batch.json")
	})
	return compiledSchema, compileSchemaError
}
