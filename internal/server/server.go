// Package server exposes a converted log archive over HTTP: the generated
// pages, the stylesheet, raw logs (decoded to UTF-8) and a search page
// backed by a linear scan of the archive.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/irclogview/irclogview/internal/logparse"
)

// Config wires the server to a log archive. LogDir is a single channel's
// directory; ChanDir, when set, is a directory of per-channel directories
// listed at the root instead.
type Config struct {
	Addr      string
	LogDir    string
	ChanDir   string
	Pattern   string
	Dircproxy bool
	Dialect   logparse.Dialect
}

type Server struct {
	router *chi.Mux
	cfg    Config
}

func New(cfg Config) *Server {
	if cfg.Pattern == "" {
		cfg.Pattern = "*.log"
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{router: router, cfg: cfg}

	router.Get("/irclog.css", s.css)
	router.Get("/search", s.search)
	router.Get("/", s.root)
	router.Get("/{name}", s.file)
	if cfg.ChanDir != "" {
		router.Get("/{channel}/", s.channelRoot)
		router.Get("/{channel}/search", s.search)
		router.Get("/{channel}/irclog.css", s.css)
		router.Get("/{channel}/{name}", s.file)
	}

	return s
}

func (s *Server) Start() error {
	slog.Info("serving IRC logs", "addr", s.cfg.Addr, "dir", s.logDirRoot())
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logDirRoot() string {
	if s.cfg.ChanDir != "" {
		return s.cfg.ChanDir
	}
	return s.cfg.LogDir
}

// logDir resolves the archive directory for the request, taking the channel
// path segment into account. A false return means an invalid channel.
func (s *Server) logDir(r *http.Request) (string, bool) {
	channel := chi.URLParam(r, "channel")
	if channel == "" {
		return s.cfg.LogDir, true
	}
	if s.cfg.ChanDir == "" || strings.Contains(channel, "..") {
		return "", false
	}
	dir := filepath.Join(s.cfg.ChanDir, channel)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	if s.cfg.ChanDir != "" {
		s.dirListing(w)
		return
	}
	s.serveArchiveFile(w, r, s.cfg.LogDir, "index.html")
}

func (s *Server) channelRoot(w http.ResponseWriter, r *http.Request) {
	dir, ok := s.logDir(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.serveArchiveFile(w, r, dir, "index.html")
}

func (s *Server) file(w http.ResponseWriter, r *http.Request) {
	dir, ok := s.logDir(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	name := chi.URLParam(r, "name")
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}
	s.serveArchiveFile(w, r, dir, name)
}

func (s *Server) css(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	if dir, ok := s.logDir(r); ok {
		if body, err := os.ReadFile(filepath.Join(dir, "irclog.css")); err == nil {
			w.Write(body)
			return
		}
	}
	w.Write(embeddedCSS)
}

// serveArchiveFile serves one file from the archive. Raw logs are decoded
// line by line so legacy 8-bit days still read as UTF-8 in the browser.
// A missing index page redirects to the search form.
func (s *Server) serveArchiveFile(w http.ResponseWriter, r *http.Request, dir, name string) {
	body, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if name == "index.html" {
			http.Redirect(w, r, "search", http.StatusFound)
			return
		}
		http.NotFound(w, r)
		return
	}

	switch {
	case strings.HasSuffix(name, ".css"):
		w.Header().Set("Content-Type", "text/css")
		w.Write(body)
	case strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".txt"):
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		for _, line := range strings.SplitAfter(string(body), "\n") {
			w.Write([]byte(logparse.DecodeLine([]byte(line))))
		}
	default:
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		w.Write(body)
	}
}

// dirListing renders the channel list at the root of a multi-channel
// archive.
func (s *Server) dirListing(w http.ResponseWriter) {
	entries, err := os.ReadDir(s.cfg.ChanDir)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	writeChannelListing(w, names)
}
