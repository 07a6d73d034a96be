package resend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sufra/config"
	"sufra/infras/resend"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.External.Resend.APIKey = "re_test_key"
	cfg.External.Resend.BaseURL = baseURL
	cfg.External.Resend.Sender = "EEIS Iftar <onboarding@resend.dev>"
	cfg.External.Resend.DefaultRecipients = []string{"madrasah@eeis.co.uk"}

	return cfg
}

func TestSendEmail(t *testing.T) {
	var captured struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
	}

	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)

		authHeader = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email-id"}`))
	}))
	defer server.Close()

	client := resend.New(testConfig(server.URL))

	result, err := client.SendEmail(context.Background(), resend.Email{
		Subject: "Test subject",
		Body:    "Line one\nLine two",
	})

	assert.NoError(t, err)
	assert.True(t, result.OK())
	assert.JSONEq(t, `{"id":"email-id"}`, string(result.Payload))

	assert.Equal(t, "Bearer re_test_key", authHeader)
	assert.Equal(t, "EEIS Iftar <onboarding@resend.dev>", captured.From)
	assert.Equal(t, []string{"madrasah@eeis.co.uk"}, captured.To)
	assert.Equal(t, "Line one<br>Line two", captured.HTML)
}

func TestSendEmail_ExplicitRecipients(t *testing.T) {
	var captured struct {
		To []string `json:"to"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := resend.New(testConfig(server.URL))

	_, err := client.SendEmail(context.Background(), resend.Email{
		Subject: "Test subject",
		Body:    "Body",
		To:      []string{"direct@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"direct@example.com"}, captured.To)
}

func TestSendEmail_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer server.Close()

	client := resend.New(testConfig(server.URL))

	result, err := client.SendEmail(context.Background(), resend.Email{
		Subject: "Test subject",
		Body:    "Body",
	})

	assert.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
}

func TestSendEmail_MissingAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.External.Resend.APIKey = ""

	client := resend.New(cfg)

	_, err := client.SendEmail(context.Background(), resend.Email{
		Subject: "Test subject",
		Body:    "Body",
	})

	assert.Error(t, err)
}
