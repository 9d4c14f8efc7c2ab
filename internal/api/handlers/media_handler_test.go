package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMediaService returns canned outcomes and records what it was
// handed. Outcomes never use ACCEPTED here so no probe is enqueued.
type stubMediaService struct {
	lastSubmission transfer.Submission
	removedID      string
	retriedID      string

	outcome *transfer.Outcome
	items   []*models.MediaItem
	listErr error
}

func (s *stubMediaService) Submit(ctx context.Context, sub transfer.Submission) *transfer.Outcome {
	s.lastSubmission = sub
	return s.outcome
}

func (s *stubMediaService) List(ctx context.Context) ([]*models.MediaItem, error) {
	return s.items, s.listErr
}

func (s *stubMediaService) Remove(ctx context.Context, id string) *transfer.Outcome {
	s.removedID = id
	return s.outcome
}

func (s *stubMediaService) Retry(ctx context.Context, mediaID string) *transfer.Outcome {
	s.retriedID = mediaID
	return s.outcome
}

func newMediaApp(stub *stubMediaService) *fiber.App {
	h := NewMediaHandler(stub, nil, 0)

	app := fiber.New()
	app.Get("/media", h.ListMedia)
	app.Post("/media", h.CreateMedia)
	app.Post("/media/upload", h.UploadMedia)
	app.Patch("/media/:id", h.UpdateMedia)
	app.Delete("/media/:id", h.DeleteMedia)
	app.Post("/media/:id/retry", h.RetryMedia)
	return app
}

func decodeOutcome(t *testing.T, resp *http.Response) *transfer.Outcome {
	t.Helper()
	var o transfer.Outcome
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	resp.Body.Close()
	return &o
}

func TestListMedia(t *testing.T) {
	stub := &stubMediaService{items: []*models.MediaItem{{ID: "m1", Status: models.MediaStatusReady}}}
	app := newMediaApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/media", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []*models.MediaItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}

func TestListMedia_UpstreamFailure(t *testing.T) {
	stub := &stubMediaService{listErr: io.ErrUnexpectedEOF}
	app := newMediaApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/media", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestCreateMedia_BuildsURLCreation(t *testing.T) {
	stub := &stubMediaService{outcome: &transfer.Outcome{Category: transfer.OutcomeSuccess}}
	app := newMediaApp(stub)

	body := []byte(`{"groupIds":["g1","g2"],"url":"https://x/v.mp4","name":"promo"}`)
	req := httptest.NewRequest(http.MethodPost, "/media", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	sub, ok := stub.lastSubmission.(*transfer.URLCreation)
	require.True(t, ok)
	assert.Equal(t, []string{"g1", "g2"}, sub.Groups.IDs())
	assert.Equal(t, "https://x/v.mp4", sub.URL)
	assert.Equal(t, "promo", sub.Name)
}

func TestCreateMedia_MalformedBody(t *testing.T) {
	stub := &stubMediaService{}
	app := newMediaApp(stub)

	req := httptest.NewRequest(http.MethodPost, "/media", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, stub.lastSubmission)
}

func TestUpdateMedia_BuildsURLEditWithID(t *testing.T) {
	stub := &stubMediaService{outcome: &transfer.Outcome{Category: transfer.OutcomeSuccess}}
	app := newMediaApp(stub)

	body := []byte(`{"groupIds":["g1"],"url":"https://x/v2.mp4","name":null}`)
	req := httptest.NewRequest(http.MethodPatch, "/media/m7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	sub, ok := stub.lastSubmission.(*transfer.URLEdit)
	require.True(t, ok)
	assert.Equal(t, "m7", sub.MediaID)
	assert.Equal(t, "", sub.Name)
}

func TestUploadMedia_ValidationOutcomeIs400(t *testing.T) {
	stub := &stubMediaService{outcome: transfer.LocalValidation("file required")}
	app := newMediaApp(stub)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("groupIds[]", "g1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	o := decodeOutcome(t, resp)
	assert.Equal(t, transfer.OutcomeValidation, o.Category)
	assert.Equal(t, "file required", o.Message)
	assert.True(t, o.Retryable)

	sub, ok := stub.lastSubmission.(*transfer.UploadCreation)
	require.True(t, ok)
	assert.Nil(t, sub.File)
	assert.Equal(t, []string{"g1"}, sub.Groups.IDs())
}

func TestUploadMedia_LegacyGroupField(t *testing.T) {
	stub := &stubMediaService{outcome: transfer.LocalValidation("file required")}
	app := newMediaApp(stub)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("groupIds", "g9"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, err := app.Test(req)
	require.NoError(t, err)

	sub, ok := stub.lastSubmission.(*transfer.UploadCreation)
	require.True(t, ok)
	assert.Equal(t, []string{"g9"}, sub.Groups.IDs())
}

func TestDeleteMedia(t *testing.T) {
	stub := &stubMediaService{outcome: &transfer.Outcome{Category: transfer.OutcomeSuccess, Message: "Media deleted."}}
	app := newMediaApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/media/m3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "m3", stub.removedID)
}

func TestRetryMedia_WithoutArchive(t *testing.T) {
	stub := &stubMediaService{outcome: transfer.LocalValidation("no archived payload for this item")}
	app := newMediaApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/media/m4/retry", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "m4", stub.retriedID)
}

func TestOutcomeStatusMapping(t *testing.T) {
	cases := []struct {
		category transfer.OutcomeCategory
		status   int
	}{
		{transfer.OutcomeAccepted, fiber.StatusAccepted},
		{transfer.OutcomeSuccess, fiber.StatusOK},
		{transfer.OutcomeValidation, fiber.StatusBadRequest},
		{transfer.OutcomeValidationError, fiber.StatusBadRequest},
		{transfer.OutcomeAuthError, fiber.StatusUnauthorized},
		{transfer.OutcomeCapacityError, fiber.StatusServiceUnavailable},
		{transfer.OutcomeUnknownError, fiber.StatusBadGateway},
		{transfer.OutcomeTransportError, fiber.StatusBadGateway},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, outcomeStatus(&transfer.Outcome{Category: tc.category}), string(tc.category))
	}
}
