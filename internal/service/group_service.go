package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/transfer"
)

// GroupService is a thin proxy over the group directory. The console
// consumes it read-mostly; writes are plain CRUD forwarded as-is.
type GroupService interface {
	List(ctx context.Context) ([]*models.Group, error)
	Create(ctx context.Context, payload *transfer.GroupPayload) *transfer.Outcome
	Update(ctx context.Context, id string, payload *transfer.GroupPayload) *transfer.Outcome
	Remove(ctx context.Context, id string) *transfer.Outcome
}

type groupService struct {
	rc *remote.Client
}

func NewGroupService(rc *remote.Client) GroupService {
	return &groupService{rc: rc}
}

func (s *groupService) List(ctx context.Context) ([]*models.Group, error) {
	resp, err := s.rc.GetJSON(ctx, "group")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var groups []*models.Group
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return groups, nil
}

func (s *groupService) Create(ctx context.Context, payload *transfer.GroupPayload) *transfer.Outcome {
	resp, err := s.rc.PostJSON(ctx, "group", payload)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}

func (s *groupService) Update(ctx context.Context, id string, payload *transfer.GroupPayload) *transfer.Outcome {
	resp, err := s.rc.PatchJSON(ctx, "group/"+id, payload)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}

func (s *groupService) Remove(ctx context.Context, id string) *transfer.Outcome {
	resp, err := s.rc.Delete(ctx, "group/"+id)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}
