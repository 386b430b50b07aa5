// Package web provides the HTTP server and handlers for the lease entry form.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/evcraddock/lease-desk/internal/form"
	"github.com/evcraddock/lease-desk/internal/logging"
	"github.com/evcraddock/lease-desk/internal/property"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the web form HTTP server.
type Server struct {
	form      *form.Controller
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server around the given form controller.
func NewServer(ctrl *form.Controller) (*Server, error) {
	funcMap := template.FuncMap{
		"kinds": func() []property.Kind { return property.Kinds },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		form:      ctrl,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/create", s.handleCreate)
	s.mux.HandleFunc("/pay", s.handlePay)
	s.mux.HandleFunc("/", s.handleForm)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting web form", "url", fmt.Sprintf("http://localhost%s", addr))
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}
