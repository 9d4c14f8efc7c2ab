package service

import (
	"context"
	"encoding/json"
	"log/slog"

	config "github.com/screenline/console-api/configs"
	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/transfer"
	"github.com/screenline/console-api/pkg/utils"
)

// AuthService forwards operator credentials to the remote auth endpoint
// and binds the returned bearer token to a console session. Token
// issuance itself belongs to the remote side.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *transfer.Outcome)
	Logout(ctx context.Context)
}

type authService struct {
	cfg   config.Config
	rc    *remote.Client
	store *remote.CredentialStore
}

func NewAuthService(cfg config.Config, rc *remote.Client, store *remote.CredentialStore) AuthService {
	return &authService{cfg: cfg, rc: rc, store: store}
}

// Login returns a signed session token alongside the outcome; the token
// is empty unless the outcome is successful.
func (s *authService) Login(ctx context.Context, username, password string) (string, *transfer.Outcome) {
	resp, err := s.rc.PostJSONAnonymous(ctx, "auth/admin/login", transfer.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", ClassifyTransportError(err)
	}

	body := remote.ReadBody(resp)
	outcome := ClassifyResponse(resp.StatusCode, body)
	if !outcome.OK() {
		return "", outcome
	}

	var login transfer.LoginResponse
	if err := json.Unmarshal(body, &login); err != nil || login.AccessToken == "" {
		slog.Info("login response carried no access token")
		return "", &transfer.Outcome{
			Category: transfer.OutcomeUnknownError,
			Title:    "Error",
			Message:  "Login response was not understood.",
		}
	}

	sessionID, err := s.store.Acquire(login.AccessToken)
	if err != nil {
		return "", &transfer.Outcome{
			Category: transfer.OutcomeUnknownError,
			Title:    "Error",
			Message:  "Unable to open a session.",
		}
	}

	sessionToken, err := utils.GenerateToken(s.cfg.SecretKey, sessionID, s.cfg.SessionTTL)
	if err != nil {
		s.store.Clear(sessionID)
		return "", &transfer.Outcome{
			Category: transfer.OutcomeUnknownError,
			Title:    "Error",
			Message:  "Unable to open a session.",
		}
	}

	outcome.Message = "Logged in."
	return sessionToken, outcome
}

func (s *authService) Logout(ctx context.Context) {
	if sessionID, ok := remote.SessionFromContext(ctx); ok {
		s.store.Clear(sessionID)
	}
}
