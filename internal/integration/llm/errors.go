package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/crop-advisory/internal/entity"
	pkghttp "github.com/futig/crop-advisory/pkg/http"
)

const maxMessageLen = 300

// APIError is a generation failure with a status that has no dedicated meaning.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error (%d): %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == entity.ErrGenerationAPI
}

func (e *APIError) HTTPStatus() int {
	return e.Status
}

// classifyError maps transport failures onto the generation error taxonomy.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return statusError(httpErr.StatusCode, upstreamMessage(httpErr.StatusCode, httpErr.Message))
	}

	return fmt.Errorf("%w: %w", entity.ErrGenerationAPI, err)
}

func statusError(status int, message string) error {
	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", entity.ErrGenerationBadRequest, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", entity.ErrGenerationUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", entity.ErrGenerationNotFound, message)
	default:
		return &APIError{Status: status, Message: message}
	}
}

// upstreamMessage pulls error.message out of a Google API error body.
func upstreamMessage(status int, body string) string {
	var envelope entity.GeminiErrorEnvelope
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return http.StatusText(status)
	}
	if len(body) > maxMessageLen {
		return body[:maxMessageLen] + "..."
	}
	return body
}

// responseText returns the first candidate's text or a "no content" error.
func responseText(resp *entity.GeminiGenerateResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", entity.NoContent(entity.ErrNoCandidates)
	}

	text := resp.FirstText()
	if text == "" {
		return "", entity.NoContent(entity.ErrEmptyGeneration)
	}

	return text, nil
}
