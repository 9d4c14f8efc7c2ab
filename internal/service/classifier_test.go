package service

import (
	"errors"
	"testing"

	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/transfer"
	"github.com/stretchr/testify/assert"
)

func TestClassifyResponse_Accepted(t *testing.T) {
	outcome := ClassifyResponse(202, []byte(`{"id":"m1"}`))
	assert.Equal(t, transfer.OutcomeAccepted, outcome.Category)
}

func TestClassifyResponse_Success(t *testing.T) {
	for _, status := range []int{200, 201, 204} {
		outcome := ClassifyResponse(status, nil)
		assert.Equal(t, transfer.OutcomeSuccess, outcome.Category, "status %d", status)
	}
}

func TestClassifyResponse_ValidationMessageArrayJoined(t *testing.T) {
	outcome := ClassifyResponse(400, []byte(`{"message":["name required","url required"]}`))

	assert.Equal(t, transfer.OutcomeValidationError, outcome.Category)
	assert.Equal(t, "name required, url required", outcome.Message)
	assert.True(t, outcome.Retryable)
}

func TestClassifyResponse_ValidationSingleMessage(t *testing.T) {
	outcome := ClassifyResponse(400, []byte(`{"message":"url must be absolute"}`))
	assert.Equal(t, "url must be absolute", outcome.Message)
}

func TestClassifyResponse_AuthError(t *testing.T) {
	outcome := ClassifyResponse(401, nil)

	assert.Equal(t, transfer.OutcomeAuthError, outcome.Category)
	assert.False(t, outcome.Retryable)
}

func TestClassifyResponse_CapacityPendingVolume(t *testing.T) {
	body := []byte(`{"message":"Суммарный объём необработанных файлов превышает 5 ГБ"}`)

	outcome := ClassifyResponse(503, body)

	assert.Equal(t, transfer.OutcomeCapacityError, outcome.Category)
	assert.Equal(t, transfer.CapacityPendingVolume, outcome.CapacityKind)
	assert.Equal(t, "Pending volume limit exceeded", outcome.Title)
}

func TestClassifyResponse_CapacityThroughput(t *testing.T) {
	outcome := ClassifyResponse(503, []byte(`{"message":"Too many concurrent jobs"}`))

	assert.Equal(t, transfer.OutcomeCapacityError, outcome.Category)
	assert.Equal(t, transfer.CapacityThroughput, outcome.CapacityKind)
	assert.Equal(t, "Processing limit exceeded", outcome.Title)
}

func TestClassifyResponse_CapacityEnglishVolumeMessage(t *testing.T) {
	outcome := ClassifyResponse(503, []byte(`{"message":"total size of pending files exceeds 5 GB"}`))
	assert.Equal(t, transfer.CapacityPendingVolume, outcome.CapacityKind)
}

func TestClassifyResponse_MalformedBodyFallsBack(t *testing.T) {
	outcome := ClassifyResponse(503, []byte(`<html>busy</html>`))

	assert.Equal(t, transfer.OutcomeCapacityError, outcome.Category)
	assert.Equal(t, "Service temporarily unavailable", outcome.Message)
	assert.Equal(t, transfer.CapacityThroughput, outcome.CapacityKind)
}

func TestClassifyResponse_UnknownStatus(t *testing.T) {
	outcome := ClassifyResponse(500, []byte(`{}`))

	assert.Equal(t, transfer.OutcomeUnknownError, outcome.Category)
	assert.Equal(t, "Unable to save media", outcome.Message)
}

func TestClassifyTransportError(t *testing.T) {
	outcome := ClassifyTransportError(errors.New("connection refused"))
	assert.Equal(t, transfer.OutcomeTransportError, outcome.Category)
}

func TestClassifyTransportError_MissingCredential(t *testing.T) {
	outcome := ClassifyTransportError(remote.ErrNoCredential)
	assert.Equal(t, transfer.OutcomeAuthError, outcome.Category)
}
