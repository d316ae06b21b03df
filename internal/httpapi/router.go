// Package httpapi exposes the batch pipeline over HTTP and serves the
// generated artifacts.
package httpapi

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"slacktime/internal/core"
	"slacktime/internal/service"
)

const maxJSONBodyBytes int64 = 10 << 20

const version = "1.0.0"

// Processor runs one report batch.
type Processor interface {
	Process(ctx context.Context, req core.BatchRequest) (service.Result, error)
}

type API struct {
	processor Processor
	outputDir string
	cors      corsPolicy
	files     http.Handler
}

func NewRouter(processor Processor, outputDir string, allowedOrigins []string) http.Handler {
	return &API{
		processor: processor,
		outputDir: outputDir,
		cors:      newCORSPolicy(allowedOrigins),
		files:     http.StripPrefix("/output/", http.FileServer(http.Dir(outputDir))),
	}
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.cors.set(w, r)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch {
	case r.URL.Path == "/api/health":
		a.handleHealth(w, r)
	case r.URL.Path == "/api/test":
		a.handleTest(w, r)
	case r.URL.Path == "/api/procesar":
		a.handleProcess(w, r)
	case strings.HasPrefix(r.URL.Path, "/output/"):
		a.handleArtifact(w, r)
	default:
		notFound(w)
	}
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
	})
}

func (a *API) handleTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Servidor está funcionando"))
}

func (a *API) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req core.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	result, err := a.processor.Process(r.Context(), req)
	if err != nil {
		writeProcessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Success: true,
		FileURL: "/output/" + result.Artifact,
		Stats: processStats{
			TotalEmails:  result.TotalEmails,
			Processed:    result.Processed,
			BusinessDays: result.BusinessDays,
			Start:        result.Start.UTC().Format(time.RFC3339),
			End:          result.End.UTC().Format(time.RFC3339),
		},
	})
}

// handleArtifact serves generated reports. Only flat filenames are
// valid; anything path-like is rejected before it reaches the
// filesystem.
func (a *API) handleArtifact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/output/")
	if name == "" || name != path.Base(name) {
		notFound(w)
		return
	}
	a.files.ServeHTTP(w, r)
}

// processResponse is the payload the frontend consumes.
type processResponse struct {
	Success bool         `json:"success"`
	FileURL string       `json:"fileUrl"`
	Stats   processStats `json:"stats"`
}

type processStats struct {
	TotalEmails  int    `json:"totalCorreos"`
	Processed    int    `json:"procesadosExitosamente"`
	BusinessDays int    `json:"diasHabiles"`
	Start        string `json:"fechaInicio"`
	End          string `json:"fechaFin"`
}
