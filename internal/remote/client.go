package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote signage API (the media repository and its
// sibling group/device/auth endpoints). Every authenticated request
// reads its bearer token through the injected CredentialProvider.
type Client struct {
	baseURL string
	creds   CredentialProvider
	http    *http.Client
}

func NewClient(baseURL string, creds CredentialProvider, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) url(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
}

func (c *Client) GetJSON(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, true)
}

func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	return c.sendJSON(ctx, http.MethodPost, path, payload, true)
}

// PostJSONAnonymous is for the login endpoint, the one request that runs
// before any credential exists.
func (c *Client) PostJSONAnonymous(ctx context.Context, path string, payload any) (*http.Response, error) {
	return c.sendJSON(ctx, http.MethodPost, path, payload, false)
}

func (c *Client) PatchJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	return c.sendJSON(ctx, http.MethodPatch, path, payload, true)
}

func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, true)
}

// PostMultipart builds a multipart body through the supplied writer
// callback and posts it. Used for the upload-intake endpoint.
func (c *Client) PostMultipart(ctx context.Context, path string, write func(*multipart.Writer) error) (*http.Response, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := write(mw); err != nil {
		mw.Close()
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(ctx, req, true)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, authed bool) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	return c.do(ctx, req, authed)
}

func (c *Client) do(ctx context.Context, req *http.Request, authed bool) (*http.Response, error) {
	if authed {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.http.Do(req)
}

// ReadBody drains and closes the response body. A read failure is logged
// and yields an empty body; classification copes with that.
func ReadBody(resp *http.Response) []byte {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Info(err.Error())
		return nil
	}
	return body
}
