package transfer

import (
	"encoding/json"
	"strings"

	"github.com/screenline/console-api/internal/models"
)

type OutcomeCategory string

const (
	// OutcomeValidation is a pre-flight rejection; no request was sent.
	OutcomeValidation      OutcomeCategory = "VALIDATION"
	OutcomeAccepted        OutcomeCategory = "ACCEPTED"
	OutcomeSuccess         OutcomeCategory = "SUCCESS"
	OutcomeValidationError OutcomeCategory = "VALIDATION_ERROR"
	OutcomeAuthError       OutcomeCategory = "AUTH_ERROR"
	OutcomeCapacityError   OutcomeCategory = "CAPACITY_ERROR"
	OutcomeUnknownError    OutcomeCategory = "UNKNOWN_ERROR"
	OutcomeTransportError  OutcomeCategory = "TRANSPORT_ERROR"
)

type CapacityKind string

const (
	CapacityPendingVolume CapacityKind = "PENDING_VOLUME_EXCEEDED"
	CapacityThroughput    CapacityKind = "THROUGHPUT_LIMIT_EXCEEDED"
)

// Outcome is what every submission resolves to: a titled, categorized
// message for the operator surface, plus the refreshed list when the
// repository confirmed the mutation.
type Outcome struct {
	Category      OutcomeCategory     `json:"category"`
	CapacityKind  CapacityKind        `json:"capacityKind,omitempty"`
	Title         string              `json:"title"`
	Message       string              `json:"message"`
	Retryable     bool                `json:"retryableByOperator"`
	SessionClosed bool                `json:"sessionClosed"`
	MediaID       string              `json:"mediaId,omitempty"`
	Items         []*models.MediaItem `json:"items,omitempty"`
}

// OK reports whether the repository confirmed the mutation.
func (o *Outcome) OK() bool {
	return o.Category == OutcomeAccepted || o.Category == OutcomeSuccess
}

// LocalValidation builds the outcome for a check that failed before any
// network interaction.
func LocalValidation(message string) *Outcome {
	return &Outcome{
		Category:  OutcomeValidation,
		Title:     "Validation error",
		Message:   message,
		Retryable: true,
	}
}

// ErrorBody is the error shape the repository returns. Validation
// frameworks emit message either as a string or as an array of strings;
// both are normalized into one display string.
type ErrorBody struct {
	Message MessageText `json:"message"`
}

type MessageText string

func (m *MessageText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = MessageText(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*m = MessageText(strings.Join(many, ", "))
		return nil
	}
	// Anything else is left empty; the classifier falls back to a
	// per-category message.
	*m = ""
	return nil
}
