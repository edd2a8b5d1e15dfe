package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/siterender/internal/render"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/store"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

const (
	maxDocumentBytes = 4 << 20
	htmlContentType  = "text/html; charset=utf-8"
)

type siteSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func summarize(rec store.Record) siteSummary {
	return siteSummary{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
}

func (s *Server) listSites(c *gin.Context) {
	records, err := s.sites.List(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]siteSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, summarize(rec))
	}
	c.JSON(http.StatusOK, gin.H{"sites": out})
}

func (s *Server) getSite(c *gin.Context) {
	rec, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) putSite(c *gin.Context) {
	writable, ok := s.sites.(store.Store)
	if !ok {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "site source is read-only"})
		return
	}

	def, ok := s.readDocument(c)
	if !ok {
		return
	}

	issues := site.Validate(def)
	if site.HasErrors(issues) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "site definition is invalid", "issues": issues})
		return
	}

	rec, err := store.NewRecord(c.Param("id"), def)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := writable.Put(c.Request.Context(), rec)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	s.Invalidate(stored.ID)
	c.JSON(http.StatusOK, gin.H{"site": summarize(stored), "issues": issues})
}

func (s *Server) deleteSite(c *gin.Context) {
	writable, ok := s.sites.(store.Store)
	if !ok {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "site source is read-only"})
		return
	}

	id := c.Param("id")
	if err := writable.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found", "id": id})
			return
		}
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	s.Invalidate(id)
	c.Status(http.StatusNoContent)
}

// preview renders a stored site. A site without pages is answered with 404
// and the visible not-found body.
func (s *Server) preview(mode render.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, ok := s.lookup(c)
		if !ok {
			return
		}
		def, err := rec.Site()
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}

		composer := render.NewComposer(s.renderer, render.ComposerOptions{
			Mode:   mode,
			Scope:  s.scope(rec.ID),
			Logger: s.log.With("site_id", rec.ID),
		})
		s.display(c, composer, def, c.Param("slug"))
	}
}

func (s *Server) renderDocument(c *gin.Context) {
	mode, err := render.ParseOutputMode(c.Query("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, ok := s.readDocument(c)
	if !ok {
		return
	}

	composer := render.NewComposer(s.renderer, render.ComposerOptions{
		Mode:   mode,
		Scope:  theme.NewScope(s.themeMode),
		Logger: s.log,
	})
	s.display(c, composer, def, c.DefaultQuery("page", "/"))
}

type sectionRequest struct {
	Section site.Section `json:"section"`
	Theme   site.Theme   `json:"theme"`
}

// renderSection previews one block in isolation.
func (s *Server) renderSection(c *gin.Context) {
	var req sectionRequest
	if err := json.NewDecoder(io.LimitReader(c.Request.Body, maxDocumentBytes)).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Section.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section content is required"})
		return
	}
	if unknown, ok := req.Section.Content.(*site.UnknownContent); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unknown.Reason()})
		return
	}

	scope := theme.NewScope(s.themeMode)
	scope.Apply(req.Theme)

	var buf bytes.Buffer
	rendered, err := s.renderer.RenderSection(&buf, req.Section, scope.Snapshot())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if !rendered {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "section could not be rendered"})
		return
	}
	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (s *Server) display(c *gin.Context, composer *render.Composer, def *site.Definition, slug string) {
	var buf bytes.Buffer
	result, err := composer.Display(&buf, def, slug)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	status := http.StatusOK
	if !result.Found {
		status = http.StatusNotFound
	}
	c.Header("X-Sections-Rendered", strconv.Itoa(result.Rendered))
	c.Header("X-Sections-Skipped", strconv.Itoa(result.Skipped))
	c.Data(status, htmlContentType, buf.Bytes())
}

func (s *Server) lookup(c *gin.Context) (store.Record, bool) {
	id := c.Param("id")
	rec, err := s.sites.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "site not found", "id": id})
		return store.Record{}, false
	}
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return store.Record{}, false
	}
	return rec, true
}

func (s *Server) readDocument(c *gin.Context) (*site.Definition, bool) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDocumentBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if len(data) > maxDocumentBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document is too large"})
		return nil, false
	}

	format := site.DetectFormat(data)
	if ct := c.ContentType(); ct == "application/yaml" || ct == "application/x-yaml" || ct == "text/yaml" {
		format = site.FormatYAML
	}

	def, err := site.ParseNamed("request body", data, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return def, true
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	s.log.With(requestIDKey, c.GetString(requestIDKey)).Error(err, "request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}
