package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/transfer"
)

type DeviceService interface {
	List(ctx context.Context) ([]*models.Device, error)
	Create(ctx context.Context, payload *transfer.DeviceCreate) *transfer.Outcome
	Update(ctx context.Context, id string, payload *transfer.DeviceUpdate) *transfer.Outcome
	Remove(ctx context.Context, id string) *transfer.Outcome
}

type deviceService struct {
	rc *remote.Client
}

func NewDeviceService(rc *remote.Client) DeviceService {
	return &deviceService{rc: rc}
}

func (s *deviceService) List(ctx context.Context) ([]*models.Device, error) {
	resp, err := s.rc.GetJSON(ctx, "device")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var devices []*models.Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return devices, nil
}

func (s *deviceService) Create(ctx context.Context, payload *transfer.DeviceCreate) *transfer.Outcome {
	resp, err := s.rc.PostJSON(ctx, "device", payload)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}

func (s *deviceService) Update(ctx context.Context, id string, payload *transfer.DeviceUpdate) *transfer.Outcome {
	resp, err := s.rc.PatchJSON(ctx, "device/"+id, payload)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}

func (s *deviceService) Remove(ctx context.Context, id string) *transfer.Outcome {
	resp, err := s.rc.Delete(ctx, "device/"+id)
	if err != nil {
		return ClassifyTransportError(err)
	}
	return ClassifyResponse(resp.StatusCode, remote.ReadBody(resp))
}
