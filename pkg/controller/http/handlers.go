package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/utils/errutil"
	"github.com/waqt-lab/sawtak/pkg/utils/safe"
)

const (
	maxAudioBytes    = 10 << 20
	messageListLimit = 20
	historyListLimit = 20
)

type processTextRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleProcessText(w http.ResponseWriter, r *http.Request) {
	var req processTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode request body"), http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("empty text"), http.StatusBadRequest)
		return
	}

	result := s.uc.Assistant.Process(r.Context(), text)
	result.Transcription = text

	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleProcessVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.transcriber == nil {
		errutil.HandleHTTP(ctx, w, goerr.New("transcription service is not configured"), http.StatusServiceUnavailable)
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "missing audio_file field"), http.StatusBadRequest)
		return
	}
	defer safe.Close(ctx, file)

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes+1))
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to read audio"), http.StatusInternalServerError)
		return
	}
	if len(audio) > maxAudioBytes {
		errutil.HandleHTTP(ctx, w, goerr.New("audio file too large",
			goerr.V("limit_bytes", maxAudioBytes)), http.StatusBadRequest)
		return
	}

	// Browsers recording via MediaRecorder often omit the extension;
	// webm is their container.
	filename := header.Filename
	if filepath.Ext(filename) == "" {
		filename += ".webm"
	}

	text, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "transcription failed"), http.StatusBadGateway)
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("no speech detected"), http.StatusBadRequest)
		return
	}

	result := s.uc.Assistant.Process(ctx, text)
	result.Transcription = text

	respondJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.repo.Contact().List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"contacts": contacts,
	})
}

type createContactRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Relation  string `json:"relation"`
	Emergency bool   `json:"emergency"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode request body"), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("name and phone are required"), http.StatusBadRequest)
		return
	}

	created, err := s.repo.Contact().Create(r.Context(), &model.Contact{
		Name:      req.Name,
		Phone:     req.Phone,
		Relation:  req.Relation,
		Emergency: req.Emergency,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusCreated, map[string]any{
		"success": true,
		"contact": created,
	})
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := s.repo.Reminder().List(r.Context(), true)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success":   true,
		"reminders": reminders,
	})
}

func (s *Server) handleListMedications(w http.ResponseWriter, r *http.Request) {
	medications, err := s.repo.Medication().List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success":     true,
		"medications": medications,
	})
}

type messageItem struct {
	ID          int64     `json:"id"`
	ContactName string    `json:"contact_name,omitempty"`
	Content     string    `json:"content"`
	Direction   string    `json:"direction"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := s.repo.Message().List(ctx, 0, messageListLimit)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	contacts, err := s.repo.Contact().List(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	nameByID := make(map[int64]string, len(contacts))
	for _, c := range contacts {
		nameByID[c.ID] = c.Name
	}

	items := make([]messageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, messageItem{
			ID:          m.ID,
			ContactName: nameByID[m.ContactID],
			Content:     m.Content,
			Direction:   m.Direction.String(),
			CreatedAt:   m.CreatedAt,
		})
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"messages": items,
	})
}

type agendaItem struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Done  bool   `json:"is_done"`
}

func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reminders, err := s.repo.Reminder().List(ctx, false)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}
	medications, err := s.repo.Medication().List(ctx)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	items := make([]agendaItem, 0, len(reminders)+len(medications))
	for _, rem := range reminders {
		items = append(items, agendaItem{
			Type:  rem.Kind.String(),
			Title: rem.Title,
			Time:  rem.Time,
			Done:  rem.Done,
		})
	}
	for _, med := range medications {
		title := med.Name
		if med.Dosage != "" {
			title = fmt.Sprintf("%s (%s)", med.Name, med.Dosage)
		}
		items = append(items, agendaItem{
			Type:  "medication",
			Title: title,
			Time:  med.Schedule,
		})
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"items":   items,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.History().List(r.Context(), historyListLimit)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"history": records,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	transcriber := "not_configured"
	if s.transcriber != nil {
		transcriber = "configured"
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   s.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]string{
			"nlp":         "ready",
			"transcriber": transcriber,
		},
	})
}
