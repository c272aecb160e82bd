package entity

import "errors"

// Domain errors
var (
	// Text generation errors
	ErrGenerationBadRequest   = errors.New("invalid request, please check your API key and try again")
	ErrGenerationUnauthorized = errors.New("API key is invalid or doesn't have permission, please verify your Gemini API key")
	ErrGenerationNotFound     = errors.New("API endpoint not found, please check your internet connection")
	ErrGenerationAPI          = errors.New("text generation API error")
	ErrNoContentGenerated     = errors.New("no content generated")
	ErrNoCandidates           = errors.New("no response generated, the content may have been filtered")
	ErrEmptyGeneration        = errors.New("empty response received from API")

	// Weather errors
	ErrWeatherUnavailable = errors.New("city not found or weather service unavailable")

	// Market errors
	ErrUnsupportedCrop = errors.New("unsupported crop")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// noContentError ties the specific empty-output errors to ErrNoContentGenerated.
type noContentError struct {
	cause error
}

func (e noContentError) Error() string { return e.cause.Error() }

func (e noContentError) Is(target error) bool {
	return target == ErrNoContentGenerated || target == e.cause
}

// NoContent marks cause as a "no content generated" failure.
func NoContent(cause error) error {
	return noContentError{cause: cause}
}
