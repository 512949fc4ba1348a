package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"go-etl-designer/internal/config"
	"go-etl-designer/internal/model"
	"go-etl-designer/internal/pipeline"
	"go-etl-designer/internal/session"
	"go-etl-designer/internal/store"
)

const sessionsPrefix = "/api/v1/sessions/"

// Handler serves the designer API. Every request names the session it acts on.
type Handler struct {
	sessions *session.Store
	scripts  *store.Store
	cfg      config.Config
	log      zerolog.Logger
}

func New(sessions *session.Store, scripts *store.Store, cfg config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		scripts:  scripts,
		cfg:      cfg,
		log:      logger.With().Str("component", "api").Logger(),
	}
}

// CreateSession starts an empty designer session
// @Summary Create a session
// @Description Start a new designer session with an empty pipeline
// @Tags sessions
// @Produce json
// @Success 201 {object} model.SessionView "Session created"
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.log.Info().Str("session", sess.ID).Msg("session created")

	var view model.SessionView
	sess.Do(func(s *session.Session) { view = s.View() })
	writeJSON(w, http.StatusCreated, view)
}

// GetSession returns the session state
// @Summary Get session
// @Description Source, uploaded columns and the labelled pipeline of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.SessionView "Session details"
// @Failure 404 {string} string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "")
	if !ok {
		return
	}

	var view model.SessionView
	sess.Do(func(s *session.Session) { view = s.View() })
	writeJSON(w, http.StatusOK, view)
}

// DeleteSession ends a session and discards its state
// @Summary End session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session ended"
// @Failure 404 {string} string "Session not found"
// @Failure 500 {string} string "Internal server error"
// @Router /sessions/{id} [delete]
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDFromPath(r.URL.Path, "")
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if err := h.sessions.Delete(id); err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if err := h.scripts.DeleteSession(id); err != nil {
		h.log.Error().Err(err).Str("session", id).Msg("failed to drop download history")
		http.Error(w, "Failed to drop download history", http.StatusInternalServerError)
		return
	}

	h.log.Info().Str("session", id).Msg("session ended")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Session ended",
		"id":      id,
	})
}

// UploadSource stores the uploaded CSV as the session source
// @Summary Upload source table
// @Description Upload one CSV file (multipart field "file"); replaces any earlier upload
// @Tags sessions
// @Accept mpfd
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} model.SessionView "Upload accepted"
// @Failure 400 {string} string "Invalid upload"
// @Failure 404 {string} string "Session not found"
// @Failure 413 {string} string "Upload too large"
// @Router /sessions/{id}/upload [post]
func (h *Handler) UploadSource(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/upload")
	if !ok {
		return
	}

	if r.ContentLength > h.cfg.MaxUploadBytes {
		http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid multipart upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Form field \"file\" is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	table, err := pipeline.ReadTable(file, h.cfg.PreviewRows)
	if err != nil {
		h.log.Warn().Err(err).Str("session", sess.ID).Msg("rejected upload")
		http.Error(w, "Invalid CSV: "+errors.Cause(err).Error(), http.StatusBadRequest)
		return
	}

	name := filepath.Base(header.Filename)
	var view model.SessionView
	sess.Do(func(s *session.Session) {
		s.SetSource(name, table)
		view = s.View()
	})

	h.log.Info().
		Str("session", sess.ID).
		Str("source", name).
		Int("rows", table.RowCount).
		Int("columns", len(table.Columns)).
		Msg("source uploaded")
	writeJSON(w, http.StatusOK, view)
}

// GetPreview returns the head of the uploaded table
// @Summary Data preview
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.Table "Preview"
// @Failure 404 {string} string "Session not found or nothing uploaded"
// @Router /sessions/{id}/preview [get]
func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/preview")
	if !ok {
		return
	}

	var table *model.Table
	sess.Do(func(s *session.Session) { table = s.Table() })
	if table == nil {
		http.Error(w, "No table uploaded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// ListSteps returns the pipeline with display labels
// @Summary List steps
// @Tags steps
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Pipeline steps"
// @Failure 404 {string} string "Session not found"
// @Router /sessions/{id}/steps [get]
func (h *Handler) ListSteps(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/steps")
	if !ok {
		return
	}

	var steps []model.StepView
	sess.Do(func(s *session.Session) { steps = session.StepViews(s.Pipeline().Steps()) })
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess.ID,
		"steps":   steps,
		"count":   len(steps),
	})
}

// AddStep appends a step to the pipeline
// @Summary Add step
// @Description Append a drop, filter or aggregate step. Incomplete steps are not added (added=false).
// @Tags steps
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param step body model.Step true "Step"
// @Success 201 {object} map[string]interface{} "Step added"
// @Success 200 {object} map[string]interface{} "Step rejected"
// @Failure 400 {string} string "Invalid JSON payload"
// @Failure 404 {string} string "Session not found"
// @Router /sessions/{id}/steps [post]
func (h *Handler) AddStep(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/steps")
	if !ok {
		return
	}

	var step model.Step
	if err := json.NewDecoder(r.Body).Decode(&step); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	step.ID = ""

	var (
		added model.Step
		steps []model.StepView
	)
	sess.Do(func(s *session.Session) {
		added, ok = s.AddStep(step)
		steps = session.StepViews(s.Pipeline().Steps())
	})

	if !ok {
		h.log.Debug().Err(step.Validate()).Str("session", sess.ID).Msg("step not added")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"added": false,
			"steps": steps,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"added": true,
		"step":  model.StepView{Step: added, Label: pipeline.Render(added)},
		"steps": steps,
	})
}

// ReorderSteps replaces the pipeline order
// @Summary Reorder steps
// @Description Reorder by step ids, or by render labels when no ids are given
// @Tags steps
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param order body model.ReorderRequest true "New order"
// @Success 200 {object} map[string]interface{} "Reordered pipeline"
// @Failure 400 {string} string "Invalid JSON payload"
// @Failure 404 {string} string "Session not found"
// @Failure 409 {string} string "Order is not a permutation of the pipeline"
// @Router /sessions/{id}/steps/order [put]
func (h *Handler) ReorderSteps(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/steps/order")
	if !ok {
		return
	}

	var req model.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var (
		err   error
		steps []model.StepView
	)
	sess.Do(func(s *session.Session) {
		if req.IDs != nil {
			err = s.Pipeline().ReorderByID(req.IDs)
		} else {
			err = s.Pipeline().Reorder(req.Labels)
		}
		steps = session.StepViews(s.Pipeline().Steps())
	})

	if errors.Is(err, pipeline.ErrNotPermutation) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to reorder steps", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess.ID,
		"steps":   steps,
		"count":   len(steps),
	})
}

// GetScript renders the pandas script for the pipeline
// @Summary Generated script
// @Description Python script reproducing the pipeline. download=1 serves it as an attachment and records it.
// @Tags scripts
// @Produce plain
// @Param id path string true "Session ID"
// @Param download query bool false "Serve as attachment"
// @Success 200 {string} string "Python source"
// @Failure 404 {string} string "Session not found"
// @Failure 500 {string} string "Internal server error"
// @Router /sessions/{id}/script [get]
func (h *Handler) GetScript(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/script")
	if !ok {
		return
	}

	var (
		script    string
		source    string
		stepCount int
	)
	sess.Do(func(s *session.Session) {
		script = s.Script(h.cfg.OutputName)
		source = s.Source().Name
		stepCount = s.Pipeline().Len()
	})

	if isTrue(r.URL.Query().Get("download")) {
		if _, err := h.scripts.SaveScript(sess.ID, source, stepCount, script); err != nil {
			h.log.Error().Err(err).Str("session", sess.ID).Msg("failed to record download")
			http.Error(w, "Failed to record download", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="`+h.cfg.ScriptName+`"`)
		h.log.Info().Str("session", sess.ID).Int("steps", stepCount).Msg("script downloaded")
	}

	w.Header().Set("Content-Type", "text/x-python; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(script))
}

// ListScripts returns the download history of a session
// @Summary Download history
// @Tags scripts
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Downloaded scripts"
// @Failure 404 {string} string "Session not found"
// @Failure 500 {string} string "Internal server error"
// @Router /sessions/{id}/scripts [get]
func (h *Handler) ListScripts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r, "/scripts")
	if !ok {
		return
	}

	records, err := h.scripts.ListScripts(sess.ID)
	if err != nil {
		h.log.Error().Err(err).Str("session", sess.ID).Msg("failed to list downloads")
		http.Error(w, "Failed to retrieve downloads", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess.ID,
		"scripts": records,
		"count":   len(records),
	})
}

// Health reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}

// session resolves the session named in the path, answering 404 itself
func (h *Handler) session(w http.ResponseWriter, r *http.Request, suffix string) (*session.Session, bool) {
	id, ok := sessionIDFromPath(r.URL.Path, suffix)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return nil, false
	}

	sess, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// sessionIDFromPath extracts {id} from /api/v1/sessions/{id}<suffix>
func sessionIDFromPath(path, suffix string) (string, bool) {
	if !strings.HasPrefix(path, sessionsPrefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}
	if len(path) < len(sessionsPrefix)+len(suffix) {
		return "", false
	}

	id := path[len(sessionsPrefix) : len(path)-len(suffix)]
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func isTrue(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	}
	return false
}
