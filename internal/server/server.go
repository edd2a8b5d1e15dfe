// Package server exposes site previews and rendering over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/render"
	"github.com/alexisbeaulieu97/siterender/internal/store"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

// Options configures a Server.
type Options struct {
	// Sites backs the preview routes. Write routes require a store.Store.
	Sites        store.Source
	Renderer     *render.Renderer
	ThemeMode    theme.Mode
	AllowOrigins []string
	Logger       *logger.Logger
}

// Server serves previews. Each stored site gets its own theme scope so
// previews of different sites never share variables.
type Server struct {
	sites     store.Source
	renderer  *render.Renderer
	themeMode theme.Mode
	log       *logger.Logger
	engine    *gin.Engine

	mu     sync.Mutex
	scopes map[string]*theme.Scope
}

// New builds the router.
func New(opts Options) (*Server, error) {
	if opts.Sites == nil {
		return nil, errors.New("server: a site source is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("server: a renderer is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	mode := opts.ThemeMode
	if mode == "" {
		mode = theme.ModeMerge
	}

	s := &Server{
		sites:     opts.Sites,
		renderer:  opts.Renderer,
		themeMode: mode,
		log:       log,
		scopes:    make(map[string]*theme.Scope),
	}
	s.engine = s.routes(opts.AllowOrigins)
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Invalidate forgets the theme scope of a site, so its next preview starts
// from an empty scope.
func (s *Server) Invalidate(id string) {
	s.mu.Lock()
	delete(s.scopes, id)
	s.mu.Unlock()
	s.log.With("site_id", id).Info("site changed")
}

func (s *Server) scope(id string) *theme.Scope {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scopes[id]
	if !ok {
		sc = theme.NewScope(s.themeMode)
		s.scopes[id] = sc
	}
	return sc
}

func (s *Server) routes(allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(requestID())
	r.Use(requestLogger(s.log))
	r.Use(recovery(s.log))
	r.Use(cors.New(corsConfig(allowOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/sites", s.listSites)
		api.GET("/sites/:id", s.getSite)
		api.PUT("/sites/:id", s.putSite)
		api.DELETE("/sites/:id", s.deleteSite)
		api.POST("/render", s.renderDocument)
		api.POST("/render/section", s.renderSection)
	}

	r.GET("/preview/:id/*slug", s.preview(render.ModeDocument))
	r.GET("/embed/:id/*slug", s.preview(render.ModeFragment))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", addr).Info("preview server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
