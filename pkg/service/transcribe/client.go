// Package transcribe is the HTTP client for the external speech-to-text
// service. The pipeline never inspects audio itself; it ships the bytes
// and gets UTF-8 text back.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/utils/safe"
)

// client implements interfaces.Transcriber
type client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a transcription client for the service at baseURL.
func New(baseURL string, opts ...Option) (interfaces.Transcriber, error) {
	if baseURL == "" {
		return nil, goerr.New("transcriber URL is required")
	}

	c := &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe posts the audio as a multipart upload and returns the
// recognized text.
func (c *client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", goerr.New("audio payload is empty", goerr.V("filename", filename))
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", filename)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create multipart field")
	}
	if _, err := part.Write(audio); err != nil {
		return "", goerr.Wrap(err, "failed to write audio payload")
	}
	if err := writer.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", &body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build transcription request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to call transcription service", goerr.V("url", c.baseURL))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", goerr.New("transcription service returned an error",
			goerr.V("status", resp.StatusCode), goerr.V("body", string(raw)))
	}

	var parsed transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", goerr.Wrap(err, "failed to decode transcription response")
	}

	return parsed.Text, nil
}
