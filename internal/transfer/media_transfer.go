package transfer

import (
	"mime/multipart"

	"github.com/screenline/console-api/internal/models"
)

// Submission is the tagged variant behind MediaService.Submit. Upload is
// create-only and edits always go through a URL reference, so "edit via
// upload" cannot be expressed at all.
type Submission interface {
	// Validate runs the pre-flight checks. A non-nil outcome is
	// terminal and means no request may be sent.
	Validate() *Outcome
	submission()
}

// UploadCreation carries a binary payload to the upload-intake endpoint.
type UploadCreation struct {
	Groups *models.AssignmentSet
	Name   string
	File   *multipart.FileHeader
}

// URLCreation creates a media record that references content by URL; no
// server-side processing happens for it.
type URLCreation struct {
	Groups *models.AssignmentSet
	Name   string
	URL    string
}

// URLEdit is a partial update of an existing record, scoped to MediaID.
type URLEdit struct {
	MediaID string
	Groups  *models.AssignmentSet
	Name    string
	URL     string
}

func (*UploadCreation) submission() {}
func (*URLCreation) submission()    {}
func (*URLEdit) submission()        {}

func (s *UploadCreation) Validate() *Outcome {
	if s.Groups.IsEmpty() {
		return LocalValidation("at least one group required")
	}
	if s.File == nil {
		return LocalValidation("file required")
	}
	return nil
}

func (s *URLCreation) Validate() *Outcome {
	if s.Groups.IsEmpty() {
		return LocalValidation("at least one group required")
	}
	if s.URL == "" {
		return LocalValidation("URL required")
	}
	return nil
}

func (s *URLEdit) Validate() *Outcome {
	if s.Groups.IsEmpty() {
		return LocalValidation("at least one group required")
	}
	if s.URL == "" {
		return LocalValidation("URL required")
	}
	return nil
}

// MediaPayload is the JSON body for URL-reference creates and edits.
// GroupIDs is always present, even when unchanged: omitting it would be
// read by the repository as "no change" and make de-assignment via
// unchecking impossible.
type MediaPayload struct {
	GroupIDs []string `json:"groupIds"`
	URL      string   `json:"url"`
	Name     *string  `json:"name"`
}

func (s *URLCreation) Payload() *MediaPayload {
	return &MediaPayload{GroupIDs: s.Groups.IDs(), URL: s.URL, Name: optionalName(s.Name)}
}

func (s *URLEdit) Payload() *MediaPayload {
	return &MediaPayload{GroupIDs: s.Groups.IDs(), URL: s.URL, Name: optionalName(s.Name)}
}

func optionalName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}

// AcceptedBody is the 202 response of the upload-intake endpoint. The id
// may be absent on older repository versions; the probe is skipped then.
type AcceptedBody struct {
	ID string `json:"id"`
}
