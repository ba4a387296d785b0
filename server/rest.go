package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/feedscout/pkg/domain"
)

// sectionInfo is the API shape for one section descriptor
type sectionInfo struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	State         string                  `json:"state"`
	Empty         bool                    `json:"empty"`
	ItemCount     int                     `json:"item_count"`
	LastUpdatedAt *time.Time              `json:"last_updated_at,omitempty"`
	LastError     string                  `json:"last_error,omitempty"`
	Items         []domain.ArticlePreview `json:"items,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// sectionsHandler lists section descriptors with their fetch state
func (s *Server) sectionsHandler(w http.ResponseWriter, r *http.Request) {
	sections := s.feed.Sections()
	res := make([]sectionInfo, 0, len(sections))
	for _, sec := range sections {
		res = append(res, s.sectionInfo(sec, false))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// sectionHandler returns one section with its items
func (s *Server) sectionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctrl := s.feed.Controller(id)
	if ctrl == nil {
		renderError(w, r, fmt.Errorf("section %s not found", id), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, s.sectionInfo(ctrl.Section(), true))
}

// sectionRetryHandler retries a failed section fetch
func (s *Server) sectionRetryHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ctrl := s.feed.Controller(id)
	if ctrl == nil {
		renderError(w, r, fmt.Errorf("section %s not found", id), http.StatusNotFound)
		return
	}

	if err := ctrl.FetchIfError(r.Context()); err != nil {
		log.Printf("[WARN] retry failed for section %s: %v", id, err)
		renderError(w, r, fmt.Errorf("couldn't refresh %s", id), http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, s.sectionInfo(ctrl.Section(), true))
}

// refreshHandler runs a user-initiated update pass, bypassing freshness
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	changed := s.feed.Update(r.Context(), true)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"changed": changed})
}

// blacklistListHandler returns the suppressed section identifiers
func (s *Server) blacklistListHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.blacklist.All())
}

// blacklistAddHandler suppresses a section
func (s *Server) blacklistAddHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.blacklist.Add(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to blacklist %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	// the section disappears from the list on the next update pass
	renderJSON(w, r, http.StatusOK, s.blacklist.All())
}

// blacklistRemoveHandler un-suppresses a section
func (s *Server) blacklistRemoveHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.blacklist.Remove(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to remove %s from blacklist: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.blacklist.All())
}

// historyListHandler returns a page of history entries
func (s *Server) historyListHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	entries, err := s.history.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("[ERROR] failed to list history: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, entries)
}

// historyAddHandler records a page visit
func (s *Server) historyAddHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		renderError(w, r, fmt.Errorf("url parameter required"), http.StatusBadRequest)
		return
	}
	if err := s.history.AddPage(r.Context(), url); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusCreated, map[string]string{"url": url})
}

// historyRemoveHandler deletes one entry, or everything without a url
func (s *Server) historyRemoveHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		if err := s.history.RemoveAll(r.Context()); err != nil {
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]string{"removed": "all"})
		return
	}
	if err := s.history.RemoveEntry(r.Context(), url); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"removed": url})
}

// sectionInfo builds the API shape for a section, optionally with items.
// Extracts pass through the HTML sanitizer before leaving the server.
func (s *Server) sectionInfo(sec domain.Section, withItems bool) sectionInfo {
	info := sectionInfo{
		ID:            sec.ID,
		Type:          sec.Type.String(),
		LastUpdatedAt: sec.LastUpdatedAt,
	}

	ctrl := s.feed.Controller(sec.ID)
	if ctrl == nil {
		info.State = domain.StateIdle.String()
		return info
	}

	info.State = ctrl.State().String()
	info.Empty = ctrl.IsEmpty()
	items := ctrl.Items()
	info.ItemCount = len(items)
	if err := ctrl.LastError(); err != nil {
		info.LastError = err.Error()
	}

	if withItems {
		info.Items = make([]domain.ArticlePreview, len(items))
		for i, item := range items {
			item.Extract = s.sanitizer.Sanitize(item.Extract)
			info.Items[i] = item
		}
	}
	return info
}
