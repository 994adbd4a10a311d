package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"langtool/internal/ports/output"
	"langtool/web"
)

type Config struct {
	Host string
	Port int
	// StaticDir is served for every path but "/". Empty means the embedded assets.
	StaticDir string
	// IndexFile is returned for "/". Empty means the embedded page.
	IndexFile       string
	ShutdownTimeout time.Duration
	// Locale selects the language of log messages.
	Locale string
}

// Server serves a fixed page at "/" and static files everywhere else.
type Server struct {
	cfg        Config
	translator output.T
	logger     *log.Logger
	router     chi.Router
}

func New(cfg Config, translator output.T, logger *log.Logger) (*Server, error) {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	static, err := staticFS(cfg.StaticDir)
	if err != nil {
		return nil, err
	}
	indexFS, indexName, err := indexSource(cfg.IndexFile)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		translator: translator,
		logger:     logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(recovery(logger))
	router.Use(middleware.GetHead)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, indexFS, indexName)
	})
	router.Get("/*", withoutListing(static, http.FileServerFS(static)))

	s.router = router
	return s, nil
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the address the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Start listens on Addr and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info(s.translator.T(s.cfg.Locale, "server.listening", map[string]any{"URL": publicURL(ln.Addr())}))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info(s.translator.T(s.cfg.Locale, "server.stopping", nil))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func staticFS(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(web.FS, web.PublicDir)
		if err != nil {
			return nil, fmt.Errorf("embedded assets: %w", err)
		}
		return sub, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static dir: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func indexSource(file string) (fs.FS, string, error) {
	if file == "" {
		return web.FS, web.IndexFile, nil
	}
	if _, err := os.Stat(file); err != nil {
		return nil, "", fmt.Errorf("index file: %w", err)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, "", fmt.Errorf("index file: %w", err)
	}
	return os.DirFS(filepath.Dir(abs)), filepath.Base(abs), nil
}

// withoutListing answers 404 for directories that have no index.html instead
// of letting the file server list them.
func withoutListing(fsys fs.FS, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		if info, err := fs.Stat(fsys, name); err == nil && info.IsDir() {
			if _, err := fs.Stat(fsys, path.Join(name, "index.html")); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		next.ServeHTTP(w, r)
	}
}

func publicURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
