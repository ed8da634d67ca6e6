package generation

import (
	"net/http"

	"wander/internal/domain/entity"
	"wander/internal/errors"

	"github.com/sashabaranov/go-openai"
)

const (
	codeContextLengthExceeded = "context_length_exceeded"
	codeModelNotFound         = "model_not_found"
	codeContentFilter         = "content_filter"
	codeContentPolicy         = "content_policy_violation"
)

// classifyError maps a client error onto the generation error kinds.
func classifyError(err error) *entity.GenerationError {
	var genErr *entity.GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code, _ := apiErr.Code.(string)
		switch {
		case code == codeContextLengthExceeded:
			return entity.NewGenerationError(entity.GenerationExceededContextWindow, "")
		case code == codeContentFilter || code == codeContentPolicy:
			return entity.NewGenerationError(entity.GenerationGuardrailViolation, "")
		case code == codeModelNotFound || apiErr.HTTPStatusCode == http.StatusNotFound:
			return entity.NewGenerationError(entity.GenerationModelUnavailable, apiErr.Message)
		}

		if kind, ok := statusKind(apiErr.HTTPStatusCode); ok {
			return entity.NewGenerationError(kind, "")
		}

		return entity.NewGenerationError(entity.GenerationUnknown, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusNotFound {
			return entity.NewGenerationError(entity.GenerationModelUnavailable, reqErr.Error())
		}
		if kind, ok := statusKind(reqErr.HTTPStatusCode); ok {
			return entity.NewGenerationError(kind, "")
		}
	}

	return entity.NewGenerationError(entity.GenerationUnknown, err.Error())
}

func statusKind(status int) (entity.GenerationErrorKind, bool) {
	switch status {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return entity.GenerationModelNotReady, true
	default:
		return "", false
	}
}

// finishReasonError turns an abnormal finish into an error; normal stops return nil.
func finishReasonError(reason openai.FinishReason) *entity.GenerationError {
	switch reason {
	case openai.FinishReasonLength:
		return entity.NewGenerationError(entity.GenerationExceededContextWindow, "")
	case openai.FinishReasonContentFilter:
		return entity.NewGenerationError(entity.GenerationGuardrailViolation, "")
	default:
		return nil
	}
}
