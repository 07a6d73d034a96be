package resend

//go:generate go run go.uber.org/mock/mockgen -source=./resend.go -destination=./mocks/resend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"sufra/config"
	"sufra/shared/constant"
)

const emailsPath = "/emails"

// Email is one transactional email request. To falls back to the configured
// default recipients when empty, and the sender is always the configured one.
type Email struct {
	Subject string
	Body    string
	To      []string
}

// Result carries the upstream response verbatim so callers can pass it
// through, plus the upstream status code.
type Result struct {
	StatusCode int
	Payload    json.RawMessage
}

func (r *Result) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client wraps the Resend transactional email API.
type Client interface {
	SendEmail(ctx context.Context, email Email) (*Result, error)
}

type clientImpl struct {
	config *config.Config
	http   *http.Client
}

func New(cfg *config.Config) Client {
	return &clientImpl{
		config: cfg,
		http:   http.DefaultClient,
	}
}

type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmail posts the email to the Resend API. Plain-text newlines are
// converted to <br> for rendering, matching how the relay has always
// formatted booking notifications.
func (c *clientImpl) SendEmail(ctx context.Context, email Email) (*Result, error) {
	if c.config.External.Resend.APIKey == "" {
		return nil, fmt.Errorf("missing RESEND API key")
	}

	to := email.To
	if len(to) == 0 {
		to = c.config.External.Resend.DefaultRecipients
	}

	payload := sendPayload{
		From:    c.config.External.Resend.Sender,
		To:      to,
		Subject: email.Subject,
		HTML:    strings.ReplaceAll(email.Body, "\n", "<br>"),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.External.Resend.BaseURL+emailsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.config.External.Resend.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	upstream, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read email API response: %w", err)
	}

	log.Debug().Int("status", resp.StatusCode).Msg("email API responded")

	return &Result{
		StatusCode: resp.StatusCode,
		Payload:    json.RawMessage(upstream),
	}, nil
}
