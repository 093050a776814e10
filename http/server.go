// Package http serves the interactive search page over HTTP.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/teologia"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":8080"

// ShutdownTimeout is the time given for outstanding requests to finish
// before shutdown.
const ShutdownTimeout = 5 * time.Second

// maxFormBytes limits the size of submitted forms.
const maxFormBytes = 32 * 1024

// Server serves the search page. Each browser session keeps its own query
// state; a search only runs on an explicit submit.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	addr        string
	sessionTTL  time.Duration
	searchRate  float64
	searchBurst int
	logger      *slog.Logger

	sources  teologia.SourceService
	sessions *SessionStore
	limiter  *ClientLimiter
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithSessionTTL sets how long idle sessions are kept.
// Defaults to DefaultSessionTTL.
func WithSessionTTL(d time.Duration) Option {
	return func(s *Server) {
		s.sessionTTL = d
	}
}

// WithSearchRate sets how many searches per second each client may run,
// with the given burst. A non-positive rate disables limiting.
// Defaults to DefaultSearchRate and DefaultSearchBurst.
func WithSearchRate(rps float64, burst int) Option {
	return func(s *Server) {
		s.searchRate = rps
		s.searchBurst = burst
	}
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server answering queries from sources.
func NewServer(sources teologia.SourceService, opts ...Option) *Server {
	s := &Server{
		addr:        DefaultAddr,
		sessionTTL:  DefaultSessionTTL,
		searchRate:  DefaultSearchRate,
		searchBurst: DefaultSearchBurst,
		sources:     sources,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.sessions = NewSessionStore(s.sessionTTL)
	s.limiter = NewClientLimiter(s.searchRate, s.searchBurst)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders)

	r.Get("/", s.handleIndex)
	r.Post("/search", s.limiter.limit(s.handleSearch))
	r.Post("/toggle", s.handleToggle)
	r.Get("/healthz", s.handleHealth)
	s.router = r

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Open begins listening on the configured address and serves in the
// background.
func (s *Server) Open() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go s.Serve()

	return nil
}

// Listen opens the listener without serving.
func (s *Server) Listen() (err error) {
	s.ln, err = net.Listen("tcp", s.addr)
	return err
}

// Serve accepts connections on the listener opened by Listen. It blocks
// until the server is closed and then returns nil.
func (s *Server) Serve() error {
	if s.ln == nil {
		return teologia.Errorf(teologia.EINVALID, "server is not listening")
	}
	if err := s.server.Serve(s.ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().(*net.TCPAddr)
	host := "localhost"
	if ip := addr.IP; ip != nil && !ip.IsUnspecified() {
		host = ip.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port))
}

// Sessions returns the server's session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// ServeHTTP routes the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entry := s.sessions.lookup(w, r)

	entry.mu.Lock()
	view := newPageView(entry.state)
	entry.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

// handleToggle stores the form fields and toggles one category filter
// without running a search.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	form, err := parseQueryForm(w, r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	category, err := teologia.ParseCategory(r.PostForm.Get("category"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	entry := s.sessions.lookup(w, r)
	entry.mu.Lock()
	form.apply(entry.state)
	entry.state.ToggleCategory(category)
	entry.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleSearch stores the form fields and runs the search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	form, err := parseQueryForm(w, r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	entry := s.sessions.lookup(w, r)
	entry.mu.Lock()
	form.apply(entry.state)
	err = entry.state.Submit(r.Context(), s.sources)
	entry.mu.Unlock()
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// queryForm holds the text and mode fields shared by both forms.
type queryForm struct {
	query string
	mode  teologia.Mode
}

func parseQueryForm(w http.ResponseWriter, r *http.Request) (queryForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return queryForm{}, teologia.Errorf(teologia.EINVALID, "invalid form: %v", err)
	}

	mode := teologia.ModePointed
	if v := r.PostForm.Get("mode"); v != "" {
		var err error
		if mode, err = teologia.ParseMode(v); err != nil {
			return queryForm{}, err
		}
	}
	return queryForm{query: r.PostForm.Get("q"), mode: mode}, nil
}

func (f queryForm) apply(state *teologia.Session) {
	state.SetQuery(f.query)
	state.SetMode(f.mode)
}
