package market

import (
	"errors"

	"github.com/futig/crop-advisory/internal/entity"
)

const defaultNotice = "Failed to fetch crop data. Please check your API key and internet connection."

// Notice turns a generation failure into the message shown next to placeholder content.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrGenerationBadRequest):
		return "Invalid request. Please check your API key and try again."
	case errors.Is(err, entity.ErrGenerationUnauthorized):
		return "API key is invalid or doesn't have permission. Please verify your Gemini API key."
	case errors.Is(err, entity.ErrGenerationNotFound):
		return "API endpoint not found. Please check your internet connection."
	case errors.Is(err, entity.ErrNoCandidates):
		return "No response generated. The content may have been filtered."
	case errors.Is(err, entity.ErrEmptyGeneration):
		return "Empty response received from API"
	}

	var statusErr interface {
		error
		HTTPStatus() int
	}
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	return defaultNotice
}
