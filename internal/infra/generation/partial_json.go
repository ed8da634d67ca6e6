package generation

import (
	"encoding/json"
	"strings"

	"wander/internal/domain/entity"
)

type jsonFrame struct {
	closer    byte
	expectKey bool
}

// closePartialJSON cuts text back to the last point where it can be
// completed by closing the open containers, and closes them.
// Members whose value is still streaming (strings, numbers, literals) are
// dropped rather than truncated. Leading prose before the first bracket is
// skipped. It reports false while no container has been opened.
func closePartialJSON(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}

	var stack []jsonFrame
	safeEnd := -1
	safeClosers := ""

	markSafe := func(end int) {
		closers := make([]byte, len(stack))
		for i, frame := range stack {
			closers[len(stack)-1-i] = frame.closer
		}
		safeEnd = end
		safeClosers = string(closers)
	}

	i := start
scan:
	for i < len(text) {
		c := text[i]
		switch {
		case c == '{':
			stack = append(stack, jsonFrame{closer: '}', expectKey: true})
			i++
			markSafe(i)
		case c == '[':
			stack = append(stack, jsonFrame{closer: ']'})
			i++
			markSafe(i)
		case c == '}' || c == ']':
			if len(stack) == 0 || stack[len(stack)-1].closer != c {
				break scan
			}
			stack = stack[:len(stack)-1]
			i++
			if len(stack) == 0 {
				return text[start:i], true
			}
			markSafe(i)
		case c == '"':
			end, ok := scanJSONString(text, i)
			if !ok {
				break scan
			}
			i = end
			if top := len(stack) - 1; top >= 0 && stack[top].expectKey {
				stack[top].expectKey = false
			} else {
				markSafe(i)
			}
		case c == ',':
			if top := len(stack) - 1; top >= 0 && stack[top].closer == '}' {
				stack[top].expectKey = true
			}
			i++
		case c == ':' || c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		default:
			end := scanJSONScalar(text, i)
			if end == len(text) || end == i {
				break scan
			}
			i = end
			markSafe(i)
		}
	}

	if safeEnd < 0 {
		return "", false
	}

	return text[start:safeEnd] + safeClosers, true
}

// scanJSONString returns the index just past the closing quote.
func scanJSONString(text string, open int) (int, bool) {
	for j := open + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case '"':
			return j + 1, true
		}
	}

	return 0, false
}

// scanJSONScalar returns the end of a bare number or literal.
func scanJSONScalar(text string, from int) int {
	j := from
	for j < len(text) {
		switch text[j] {
		case ',', '}', ']', ' ', '\t', '\n', '\r':
			return j
		}
		j++
	}

	return j
}

type activityEnvelope struct {
	Activities []json.RawMessage `json:"activities"`
}

// decodeSnapshot parses a closed JSON document into partial records.
// The model may answer with the envelope object or a bare array. A record
// that fails to decode, e.g. a rating sent as a string, is kept empty so it
// never passes gating.
func decodeSnapshot(closed string) ([]entity.PartialActivity, error) {
	var raw []json.RawMessage
	if strings.HasPrefix(closed, "[") {
		if err := json.Unmarshal([]byte(closed), &raw); err != nil {
			return nil, err
		}
	} else {
		var envelope activityEnvelope
		if err := json.Unmarshal([]byte(closed), &envelope); err != nil {
			return nil, err
		}
		raw = envelope.Activities
	}

	snapshot := make([]entity.PartialActivity, len(raw))
	for i, record := range raw {
		if err := json.Unmarshal(record, &snapshot[i]); err != nil {
			snapshot[i] = entity.PartialActivity{}
		}
	}

	return snapshot, nil
}
