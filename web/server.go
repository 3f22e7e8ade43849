// Package web serves the portfolio page and its browser console. Each
// websocket connection gets its own engine; history is keyed by a
// session cookie so it survives reloads.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nathoo/termfolio/config"
	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/history"
	"github.com/nathoo/termfolio/engine/registry"
	"github.com/nathoo/termfolio/engine/store"
	"github.com/nathoo/termfolio/logging"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// SessionCookie names the cookie carrying the browser session id.
const SessionCookie = "termfolio_session"

// Deps are the shared, read-only pieces every connection uses.
type Deps struct {
	Store    store.Store // durable history backend; nil keeps history in memory
	Catalog  *render.Catalog
	Root     *command.Branch // nil: the portfolio tree
	Title    string
	Greeting []types.Element
	Log      *logging.Logger
}

// Server is the HTTP front end.
type Server struct {
	cfg      *config.Config
	deps     Deps
	store    store.Store
	router   *gin.Engine
	html     *render.HTMLWriter
	upgrader websocket.Upgrader
	log      *logging.Logger

	mu        sync.Mutex
	conns     map[*safeConn]struct{}
	histories map[string]*sessionHistory // by session id
}

// sessionHistory is one browser session's history, shared by all of its
// open connections.
type sessionHistory struct {
	h    *history.History
	refs int
}

// NewServer builds the router. It fails only if the embedded templates
// do not parse.
func NewServer(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Catalog == nil {
		deps.Catalog = render.NewCatalog()
	}
	if deps.Root == nil {
		deps.Root = registry.New()
	}
	if deps.Title == "" {
		deps.Title = "termfolio"
	}

	html, err := render.NewHTMLWriter()
	if err != nil {
		return nil, err
	}

	st := deps.Store
	if st == nil || !cfg.Durable() {
		st = store.NewMemory()
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(deps.Log.Writer()))
	router.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		store:  st,
		router: router,
		html:   html,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log:       deps.Log,
		conns:     make(map[*safeConn]struct{}),
		histories: make(map[string]*sessionHistory),
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRoutes() error {
	page, err := template.ParseFS(assets, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parsing page templates: %w", err)
	}
	s.router.SetHTMLTemplate(page)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return err
	}
	s.router.StaticFS("/static", http.FS(static))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/ws", s.handleWebSocket)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Logf("listening on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.closeConns()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Log("server stopped")
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	s.sessionID(c)

	greeting, err := s.html.Render(s.deps.Greeting)
	if err != nil {
		s.log.LogError(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"title":    s.deps.Title,
		"greeting": template.HTML(greeting),
	})
}

// sessionID returns the session cookie, issuing a new id when it is
// missing or malformed. The cookie has no expiry so it ends with the
// browser session.
func (s *Server) sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(sid); err == nil {
			return sid
		}
	}
	sid := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sid, 0, "/", "", false, true)
	return sid
}

// historyKey is the store key for one session's history.
func (s *Server) historyKey(sid string) string {
	return s.cfg.History.Key + ":" + sid
}

// acquireHistory returns the session's history, loading it on the first
// connection. Every call must be paired with releaseHistory.
func (s *Server) acquireHistory(sid string) *history.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.histories[sid]
	if !ok {
		sh = &sessionHistory{h: history.New(s.store, s.historyKey(sid), s.cfg.History.Capacity, s.log)}
		s.histories[sid] = sh
	}
	sh.refs++
	return sh.h
}

func (s *Server) releaseHistory(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sh, ok := s.histories[sid]; ok {
		if sh.refs--; sh.refs <= 0 {
			delete(s.histories, sid)
		}
	}
}

func (s *Server) track(sc *safeConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[sc] = struct{}{}
}

func (s *Server) untrack(sc *safeConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, sc)
}

func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sc := range s.conns {
		sc.Close()
	}
}
