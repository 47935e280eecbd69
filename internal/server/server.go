// Package server is the local development server backing an interactive
// renderer: it serves the current project's parameters, tower, and scene
// graph as JSON, and rebuilds on demand.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/scene"
	"github.com/ChicagoDave/towerforge/pkg/tower"
	"github.com/ChicagoDave/towerforge/pkg/validation"
)

// Server serves one project directory. Parameters are re-read from disk on
// every request so edits to tower.yaml show up on refresh; the build cache
// keeps the unchanged-file case cheap.
type Server struct {
	projectPath string
	port        int
	cache       tower.Cache
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("towerforge server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the route table, split out so tests can drive it without
// a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/params", s.handleParams)
	mux.HandleFunc("GET /api/tower", s.handleTower)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/build", s.handleBuild)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>towerforge</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>towerforge</h1>
<p>Renderer not yet embedded. Run <code>npm run dev</code> in renderer/ for development.</p>
<p><a style="color:#8cf" href="/api/scene">/api/scene</a></p>
</div>
</body></html>`)
}

func (s *Server) handleParams(w http.ResponseWriter, _ *http.Request) {
	p, err := params.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleTower(w http.ResponseWriter, _ *http.Request) {
	t, err := s.buildProject()
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, t)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	p, err := params.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	t, err := s.cache.Build(*p)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, scene.Assemble(t, *p))
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	p, err := params.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, validation.ValidateParams(p))
}

// handleBuild builds from parameters posted as JSON. Fields absent from the
// body keep their defaults, mirroring how project files load.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	p := params.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpError(w, http.StatusBadRequest, fmt.Errorf("decoding parameters: %w", err))
		return
	}

	t, err := s.cache.Build(p)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, map[string]any{
		"tower":       t,
		"scene_graph": scene.Assemble(t, p),
		"validation":  validation.ValidateParams(&p),
	})
}

func (s *Server) buildProject() (*tower.Tower, error) {
	p, err := params.LoadProject(s.projectPath)
	if err != nil {
		return nil, err
	}
	return s.cache.Build(*p)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
