package transcribe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/service/transcribe"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.URL.Path).Equal("/transcribe")

		file, header, err := r.FormFile("audio")
		gt.NoError(t, err).Required()
		defer file.Close()
		gt.Value(t, header.Filename).Equal("command.wav")

		raw, err := io.ReadAll(file)
		gt.NoError(t, err).Required()
		gt.Value(t, string(raw)).Equal("fake-wav-bytes")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"appelle mohamed"}`))
	}))
	defer srv.Close()

	c, err := transcribe.New(srv.URL)
	gt.NoError(t, err).Required()

	text, err := c.Transcribe(context.Background(), []byte("fake-wav-bytes"), "command.wav")
	gt.NoError(t, err).Required()
	gt.Value(t, text).Equal("appelle mohamed")
}

func TestTranscribeErrors(t *testing.T) {
	t.Run("missing URL", func(t *testing.T) {
		_, err := transcribe.New("")
		gt.Error(t, err)
	})

	t.Run("empty audio", func(t *testing.T) {
		c, err := transcribe.New("http://localhost:1")
		gt.NoError(t, err).Required()

		_, err = c.Transcribe(context.Background(), nil, "command.wav")
		gt.Error(t, err)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, err := transcribe.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = c.Transcribe(context.Background(), []byte("x"), "command.wav")
		gt.Error(t, err)
	})
}
