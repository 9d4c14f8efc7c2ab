package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/repository"
	"github.com/screenline/console-api/internal/transfer"
)

// MediaService orchestrates media submissions against the remote
// repository: pre-flight validation, request shaping per ingestion mode,
// and classification of the response into an operator outcome. Nothing
// is retried automatically; every outcome is terminal for its request.
type MediaService interface {
	Submit(ctx context.Context, sub transfer.Submission) *transfer.Outcome
	List(ctx context.Context) ([]*models.MediaItem, error)
	Remove(ctx context.Context, id string) *transfer.Outcome
	Retry(ctx context.Context, mediaID string) *transfer.Outcome
}

type mediaService struct {
	rc      *remote.Client
	ar      repository.AttemptRepository
	ua      repository.UploadArchiveRepository
	archive PayloadArchive
}

func NewMediaService(
	rc *remote.Client,
	ar repository.AttemptRepository,
	ua repository.UploadArchiveRepository,
	archive PayloadArchive) MediaService {
	return &mediaService{
		rc:      rc,
		ar:      ar,
		ua:      ua,
		archive: archive,
	}
}

func (s *mediaService) Submit(ctx context.Context, sub transfer.Submission) *transfer.Outcome {
	// Pre-flight checks are terminal: no request leaves the gateway.
	if outcome := sub.Validate(); outcome != nil {
		return outcome
	}

	switch v := sub.(type) {
	case *transfer.UploadCreation:
		return s.submitUpload(ctx, v)
	case *transfer.URLCreation:
		return s.submitURL(ctx, v)
	case *transfer.URLEdit:
		return s.submitEdit(ctx, v)
	default:
		return transfer.LocalValidation("unknown submission type")
	}
}

var allowedUploadTypes = map[string]struct{}{
	"mp4": {}, "mov": {}, "mkv": {}, "webm": {}, "avi": {},
}

func (s *mediaService) submitUpload(ctx context.Context, sub *transfer.UploadCreation) *transfer.Outcome {
	fileContent, err := sub.File.Open()
	if err != nil {
		return transfer.LocalValidation("unable to read the selected file")
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return transfer.LocalValidation("unable to read the selected file")
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return transfer.LocalValidation("unsupported file type")
	}
	if _, ok := allowedUploadTypes[fileType.Extension]; !ok {
		return transfer.LocalValidation("unsupported file type: " + fileType.Extension)
	}

	groupIDs := sub.Groups.IDs()
	resp, err := s.rc.PostMultipart(ctx, "media/upload", func(mw *multipart.Writer) error {
		// Each group id is a repeated field so consumers that still
		// expect a single group read the first one.
		for _, groupID := range groupIDs {
			if err := mw.WriteField("groupIds[]", groupID); err != nil {
				return err
			}
		}
		if sub.Name != "" {
			if err := mw.WriteField("name", sub.Name); err != nil {
				return err
			}
		}
		part, err := mw.CreateFormFile("file", sub.File.Filename)
		if err != nil {
			return err
		}
		_, err = part.Write(fileBytes)
		return err
	})
	if err != nil {
		outcome := ClassifyTransportError(err)
		s.recordAttempt(ctx, models.AttemptModeUpload, "", groupIDs, outcome)
		return outcome
	}

	body := remote.ReadBody(resp)
	outcome := ClassifyResponse(resp.StatusCode, body)

	if outcome.Category == transfer.OutcomeAccepted {
		var accepted transfer.AcceptedBody
		if err := json.Unmarshal(body, &accepted); err == nil {
			outcome.MediaID = accepted.ID
		}
		s.archivePayload(ctx, outcome.MediaID, sub.Name, groupIDs, fileBytes, fileType.MIME.Value)
	}

	s.recordAttempt(ctx, models.AttemptModeUpload, outcome.MediaID, groupIDs, outcome)
	s.finishOnSuccess(ctx, outcome)
	return outcome
}

func (s *mediaService) submitURL(ctx context.Context, sub *transfer.URLCreation) *transfer.Outcome {
	groupIDs := sub.Groups.IDs()

	resp, err := s.rc.PostJSON(ctx, "media", sub.Payload())
	if err != nil {
		outcome := ClassifyTransportError(err)
		s.recordAttempt(ctx, models.AttemptModeURL, "", groupIDs, outcome)
		return outcome
	}

	body := remote.ReadBody(resp)
	outcome := ClassifyResponse(resp.StatusCode, body)
	if outcome.OK() {
		var created transfer.AcceptedBody
		if err := json.Unmarshal(body, &created); err == nil {
			outcome.MediaID = created.ID
		}
	}

	s.recordAttempt(ctx, models.AttemptModeURL, outcome.MediaID, groupIDs, outcome)
	s.finishOnSuccess(ctx, outcome)
	return outcome
}

func (s *mediaService) submitEdit(ctx context.Context, sub *transfer.URLEdit) *transfer.Outcome {
	groupIDs := sub.Groups.IDs()

	resp, err := s.rc.PatchJSON(ctx, "media/"+sub.MediaID, sub.Payload())
	if err != nil {
		outcome := ClassifyTransportError(err)
		s.recordAttempt(ctx, models.AttemptModeEdit, sub.MediaID, groupIDs, outcome)
		return outcome
	}

	outcome := ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
	outcome.MediaID = sub.MediaID

	s.recordAttempt(ctx, models.AttemptModeEdit, sub.MediaID, groupIDs, outcome)
	s.finishOnSuccess(ctx, outcome)
	return outcome
}

func (s *mediaService) List(ctx context.Context) ([]*models.MediaItem, error) {
	resp, err := s.rc.GetJSON(ctx, "media")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []*models.MediaItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return items, nil
}

func (s *mediaService) Remove(ctx context.Context, id string) *transfer.Outcome {
	resp, err := s.rc.Delete(ctx, "media/"+id)
	if err != nil {
		return ClassifyTransportError(err)
	}

	outcome := ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
	if outcome.OK() {
		outcome.Message = "Media deleted."
		if items, err := s.List(ctx); err == nil {
			outcome.Items = items
		}
	}
	return outcome
}

// Retry re-submits the archived payload of a failed upload as a brand
// new item. The repository treats it as a fresh attempt; the FAILED
// record itself is never transitioned.
func (s *mediaService) Retry(ctx context.Context, mediaID string) *transfer.Outcome {
	archived, err := s.ua.GetByMediaID(ctx, mediaID)
	if err != nil || archived == nil {
		return transfer.LocalValidation("no archived payload for this item")
	}

	fileBytes, contentType, err := s.archive.Fetch(ctx, archived.ObjectKey)
	if err != nil {
		return &transfer.Outcome{
			Category:  transfer.OutcomeUnknownError,
			Title:     "Error",
			Message:   "Archived payload is unavailable.",
			Retryable: true,
		}
	}

	groupIDs := splitGroupIDs(archived.GroupIDs)
	resp, err := s.rc.PostMultipart(ctx, "media/upload", func(mw *multipart.Writer) error {
		for _, groupID := range groupIDs {
			if err := mw.WriteField("groupIds[]", groupID); err != nil {
				return err
			}
		}
		if archived.Name != "" {
			if err := mw.WriteField("name", archived.Name); err != nil {
				return err
			}
		}
		part, err := mw.CreateFormFile("file", archived.ObjectKey)
		if err != nil {
			return err
		}
		_, err = part.Write(fileBytes)
		return err
	})
	if err != nil {
		outcome := ClassifyTransportError(err)
		s.recordAttempt(ctx, models.AttemptModeRetry, mediaID, groupIDs, outcome)
		return outcome
	}

	body := remote.ReadBody(resp)
	outcome := ClassifyResponse(resp.StatusCode, body)

	if outcome.Category == transfer.OutcomeAccepted {
		var accepted transfer.AcceptedBody
		if err := json.Unmarshal(body, &accepted); err == nil && accepted.ID != "" {
			outcome.MediaID = accepted.ID
			// Same object, new media record.
			s.indexArchive(ctx, archived.ObjectKey, accepted.ID, archived.Name, archived.GroupIDs, contentType, int64(len(fileBytes)))
		}
	}

	s.recordAttempt(ctx, models.AttemptModeRetry, outcome.MediaID, groupIDs, outcome)
	s.finishOnSuccess(ctx, outcome)
	return outcome
}

// finishOnSuccess closes the dialog session and refreshes the list,
// exactly once. There is no optimistic patching: the true status of a
// fresh record is only learnable by re-reading the repository.
func (s *mediaService) finishOnSuccess(ctx context.Context, outcome *transfer.Outcome) {
	if !outcome.OK() {
		return
	}
	outcome.SessionClosed = true
	items, err := s.List(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	outcome.Items = items
}

func (s *mediaService) archivePayload(ctx context.Context, mediaID, name string, groupIDs []string, data []byte, contentType string) {
	key, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return
	}

	if err := s.archive.Store(ctx, key, data, contentType); err != nil {
		slog.Info(err.Error())
		return
	}

	s.indexArchive(ctx, key, mediaID, name, strings.Join(groupIDs, ","), contentType, int64(len(data)))
}

func (s *mediaService) indexArchive(ctx context.Context, key, mediaID, name, groupIDs, contentType string, size int64) {
	_, err := s.ua.Create(ctx, &models.UploadArchive{
		ObjectKey:   key,
		MediaID:     mediaID,
		Name:        name,
		GroupIDs:    groupIDs,
		ContentType: contentType,
		FileSize:    size,
	})
	if err != nil {
		slog.Info(err.Error())
	}
}

func (s *mediaService) recordAttempt(ctx context.Context, mode, mediaID string, groupIDs []string, outcome *transfer.Outcome) {
	_, err := s.ar.Create(ctx, &models.IngestionAttempt{
		MediaID:      mediaID,
		Mode:         mode,
		GroupIDs:     strings.Join(groupIDs, ","),
		Category:     string(outcome.Category),
		CapacityKind: string(outcome.CapacityKind),
		Message:      outcome.Message,
	})
	if err != nil {
		slog.Info(err.Error())
	}
}

func splitGroupIDs(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
