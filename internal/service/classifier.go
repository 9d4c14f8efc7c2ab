package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/transfer"
)

// capacityTokens mark a 503 message as being about accumulated
// unprocessed-file volume rather than processing throughput. The
// repository phrases this limit in prose (usually Russian, mentioning
// "5 GB"), so this stays a best-effort string match, never authoritative.
var capacityTokens = []string{
	"гб",
	"gb",
	"не готов",
	"неготов",
	"сумма",
	"суммар",
	"всего",
}

// ClassifyResponse maps a repository response onto an operator-facing
// outcome. Bodies that are not valid JSON never break classification;
// every category has a fixed fallback message.
func ClassifyResponse(status int, body []byte) *transfer.Outcome {
	switch {
	case status == http.StatusAccepted:
		return &transfer.Outcome{
			Category: transfer.OutcomeAccepted,
			Title:    "File accepted",
			Message:  "File queued for processing; it will be distributed once ready.",
		}

	case status >= 200 && status < 300:
		return &transfer.Outcome{
			Category: transfer.OutcomeSuccess,
			Title:    "Success",
			Message:  "Media saved.",
		}

	case status == http.StatusBadRequest:
		return &transfer.Outcome{
			Category:  transfer.OutcomeValidationError,
			Title:     "Validation error",
			Message:   errorMessage(body, "Validation failed"),
			Retryable: true,
		}

	case status == http.StatusUnauthorized:
		return &transfer.Outcome{
			Category: transfer.OutcomeAuthError,
			Title:    "Authorization error",
			Message:  "Re-authentication required.",
		}

	case status == http.StatusServiceUnavailable:
		message := errorMessage(body, "Service temporarily unavailable")
		kind := capacityKind(message)
		title := "Processing limit exceeded"
		if kind == transfer.CapacityPendingVolume {
			title = "Pending volume limit exceeded"
		}
		return &transfer.Outcome{
			Category:     transfer.OutcomeCapacityError,
			CapacityKind: kind,
			Title:        title,
			Message:      message,
			Retryable:    true,
		}

	default:
		return &transfer.Outcome{
			Category:  transfer.OutcomeUnknownError,
			Title:     "Error",
			Message:   errorMessage(body, "Unable to save media"),
			Retryable: true,
		}
	}
}

// ClassifyTransportError covers requests that produced no response at
// all. A missing session credential surfaces as an auth outcome instead,
// since re-login is the only fix.
func ClassifyTransportError(err error) *transfer.Outcome {
	if errors.Is(err, remote.ErrNoCredential) {
		return &transfer.Outcome{
			Category: transfer.OutcomeAuthError,
			Title:    "Authorization error",
			Message:  "Re-authentication required.",
		}
	}

	slog.Error("media repository unreachable", "error", err)
	return &transfer.Outcome{
		Category:  transfer.OutcomeTransportError,
		Title:     "Error",
		Message:   "Could not reach the media repository.",
		Retryable: true,
	}
}

// capacityKind applies the heuristic inherited from the console UI: the
// pending-volume rejection mentions the 5 GB cap, so the lower-cased
// message must contain a "5" and at least one volume token.
func capacityKind(message string) transfer.CapacityKind {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "5") {
		return transfer.CapacityThroughput
	}
	for _, token := range capacityTokens {
		if strings.Contains(lower, token) {
			return transfer.CapacityPendingVolume
		}
	}
	return transfer.CapacityThroughput
}

func errorMessage(body []byte, fallback string) string {
	var parsed transfer.ErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		return fallback
	}
	return string(parsed.Message)
}
