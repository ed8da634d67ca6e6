package entity

import "fmt"

// AvailabilityStatus is the result of the generator's synchronous
// availability check.
type AvailabilityStatus string

const (
	AvailabilityAvailable         AvailabilityStatus = "available"
	AvailabilityDeviceNotEligible AvailabilityStatus = "deviceNotEligible"
	AvailabilityFeatureDisabled   AvailabilityStatus = "featureDisabled"
	AvailabilityModelNotReady     AvailabilityStatus = "modelNotReady"
	AvailabilityUnavailableOther  AvailabilityStatus = "unavailable"
)

// Availability reports whether the generator can serve a request.
type Availability struct {
	Status AvailabilityStatus
	Detail string
}

// Available reports whether generation can start.
func (a Availability) Available() bool {
	return a.Status == AvailabilityAvailable
}

// GenerationErrorKind is the closed set of generation failures.
type GenerationErrorKind string

const (
	// GenerationNotEnabled means the generation feature is switched off for this install.
	GenerationNotEnabled            GenerationErrorKind = "notEnabled"
	GenerationDeviceNotEligible     GenerationErrorKind = "deviceNotEligible"
	GenerationExceededContextWindow GenerationErrorKind = "exceededContextWindowSize"
	GenerationGuardrailViolation    GenerationErrorKind = "guardrailViolation"
	GenerationModelUnavailable      GenerationErrorKind = "modelUnavailable"
	GenerationModelNotReady         GenerationErrorKind = "modelNotReady"
	GenerationUnknown               GenerationErrorKind = "unknown"
)

// GenerationError is a failure raised by the generative text engine.
// Detail is only meaningful for GenerationModelUnavailable and GenerationUnknown.
type GenerationError struct {
	Kind   GenerationErrorKind
	Detail string
}

// NewGenerationError creates a generation error of the given kind.
func NewGenerationError(kind GenerationErrorKind, detail string) *GenerationError {
	return &GenerationError{Kind: kind, Detail: detail}
}

// Error implements the error interface with a user-facing reason.
func (e *GenerationError) Error() string {
	switch e.Kind {
	case GenerationNotEnabled:
		return "Activity generation is not enabled."
	case GenerationDeviceNotEligible:
		return "This device is not eligible for activity generation."
	case GenerationExceededContextWindow:
		return "The request was too large for the model."
	case GenerationGuardrailViolation:
		return "The request was blocked by content safety guardrails."
	case GenerationModelUnavailable:
		return fmt.Sprintf("The model is unavailable: %s", e.Detail)
	case GenerationModelNotReady:
		return "The model is not ready yet. Try again shortly."
	default:
		if e.Detail == "" {
			return "An unknown generation error occurred."
		}

		return fmt.Sprintf("An unknown generation error occurred: %s", e.Detail)
	}
}

// AvailabilityError maps an unavailable status onto the matching error kind.
// It returns nil when the generator is available.
func AvailabilityError(a Availability) *GenerationError {
	switch a.Status {
	case AvailabilityAvailable:
		return nil
	case AvailabilityDeviceNotEligible:
		return NewGenerationError(GenerationDeviceNotEligible, "")
	case AvailabilityFeatureDisabled:
		return NewGenerationError(GenerationNotEnabled, "")
	case AvailabilityModelNotReady:
		return NewGenerationError(GenerationModelNotReady, "")
	default:
		return NewGenerationError(GenerationModelUnavailable, a.Detail)
	}
}

// GenerationEventKind tags an event of the streaming generation protocol.
type GenerationEventKind string

const (
	GenerationBegin   GenerationEventKind = "begin"
	GenerationLoading GenerationEventKind = "loading"
	GenerationEnd     GenerationEventKind = "end"
	GenerationFailed  GenerationEventKind = "error"
)

// GenerationEvent is one step of begin -> loading* -> end|error.
// A Loading batch carries every fully-resolved record of the latest
// snapshot and replaces the previous batch.
type GenerationEvent struct {
	Kind       GenerationEventKind
	Activities []Activity
	Err        *GenerationError
}

// PromptParameters describe the location a search is about.
type PromptParameters struct {
	City          string
	State         string
	MaxActivities int
}

// GenerationRequest is what the generator receives: instructions, a prompt and
// the JSON shape of the records it must produce.
type GenerationRequest struct {
	Instructions string
	Prompt       string
	Schema       string
}
