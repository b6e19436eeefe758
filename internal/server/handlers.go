package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"fine-ill-eat/internal/extract"
	"fine-ill-eat/internal/plan"
	"fine-ill-eat/internal/prefs"
)

// maxUploadBytes bounds image and document uploads.
const maxUploadBytes = 10 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleMealPlan generates a full weekly plan in one shot.
func (s *Server) handleMealPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}

	res, err := s.generator.Generate(r.Context(), &p, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "plan generation failed")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleMealPlanStream generates a plan while streaming per-stage progress
// as server-sent events. The final event carries the result or the error.
func (s *Server) handleMealPlanStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	send := func(v interface{}) {
		data, err := json.Marshal(v)
		if err != nil {
			log.Printf("server: failed to marshal sse event: %v", err)
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}

	progress := func(stage, message string) {
		send(map[string]string{"stage": stage, "message": message})
	}

	res, err := s.generator.Generate(r.Context(), &p, progress)
	if err != nil {
		send(map[string]string{"type": "error", "error": "plan generation failed"})
		return
	}
	send(struct {
		Type string `json:"type"`
		*plan.Result
	}{Type: "result", Result: res})
}

// handleRegenerateMeal swaps a single meal for a fresh pick.
func (s *Server) handleRegenerateMeal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Preferences     prefs.Preferences `json:"preferences"`
		MealType        string            `json:"mealType"`
		CurrentMealName string            `json:"currentMealName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	m, err := s.generator.RegenerateMeal(&req.Preferences, req.MealType, req.CurrentMealName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"meal": m})
}

// handleParseMealImage reads meal names from an uploaded photo or
// screenshot via the vision model.
func (s *Server) handleParseMealImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.describer == nil {
		writeError(w, http.StatusServiceUnavailable, "image parsing is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image upload")
		return
	}

	imgCtx := extract.ImageContext(r.FormValue("context"))
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/" + trimDot(filepath.Ext(header.Filename))
	}

	meals, err := extract.MealsFromImage(r.Context(), s.describer, imgCtx, mimeType, data)
	if err != nil {
		writeError(w, http.StatusBadGateway, "image parsing failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"meals": meals})
}

// handleExtractDocument turns an uploaded document or pasted HTML into
// plain text for the preference form.
func (s *Server) handleExtractDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var data []byte
	contentType := r.Header.Get("Content-Type")
	if file, header, err := r.FormFile("document"); err == nil {
		defer file.Close()
		data, err = io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read document upload")
			return
		}
		contentType = header.Header.Get("Content-Type")
	} else {
		var rerr error
		data, rerr = io.ReadAll(r.Body)
		if rerr != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
	}

	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty document")
		return
	}

	text, err := extract.DocumentText(contentType, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to extract document text")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// handleHealth reports liveness. When metrics are enabled it also checks
// that the database answers, so a wedged SQLite file shows up here.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"status": "ok"}
	if s.store != nil {
		if _, err := s.store.GetDailyUsage(1); err != nil {
			resp["status"] = "degraded"
			resp["database"] = "unavailable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["database"] = "ok"
	}
	writeJSON(w, http.StatusOK, resp)
}

func trimDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
