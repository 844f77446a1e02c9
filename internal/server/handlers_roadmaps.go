package server

import (
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/jonathan/career-mentor/internal/career"
	"github.com/jonathan/career-mentor/internal/rendering"
	"github.com/jonathan/career-mentor/internal/types"
)

// MatchResponse explains how a domain was chosen for a request.
type MatchResponse struct {
	Domain string `json:"domain"`
	// Selected is true when the request named its domain explicitly.
	Selected bool `json:"selected"`
	// HasTemplate is false when the domain will be served the fallback template.
	HasTemplate bool                 `json:"hasTemplate"`
	Scores      []career.DomainScore `json:"scores"`
}

// readRoadmapRequest decodes and validates a roadmap request body.
func (s *Server) readRoadmapRequest(w http.ResponseWriter, r *http.Request) (*types.RoadmapRequest, bool) {
	var req types.RoadmapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, err)
		return nil, false
	}
	return &req, true
}

// handleGenerateRoadmap builds a personalized roadmap
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRoadmapRequest(w, r)
	if !ok {
		return
	}

	roadmap := s.catalog.Generate(req.UserInput)
	slog.Info("roadmap generated",
		slog.String("domain", roadmap.Domain),
		slog.String("experience", req.Experience),
	)
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleMatchDomain reports the keyword scores and the resolved domain without building a roadmap
func (s *Server) handleMatchDomain(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRoadmapRequest(w, r)
	if !ok {
		return
	}

	domain := s.catalog.ResolveDomain(req.SelectedDomain, req.Interests, req.Skills)
	_, hasTemplate := s.catalog.Template(domain)
	s.jsonResponse(w, http.StatusOK, MatchResponse{
		Domain:      domain,
		Selected:    strings.TrimSpace(req.SelectedDomain) != "",
		HasTemplate: hasTemplate,
		Scores:      s.catalog.Scores(req.Interests, req.Skills),
	})
}

// handleExportRoadmap builds a roadmap and returns it as a downloadable file
func (s *Server) handleExportRoadmap(w http.ResponseWriter, r *http.Request) {
	format, err := rendering.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	req, ok := s.readRoadmapRequest(w, r)
	if !ok {
		return
	}

	roadmap := s.catalog.Generate(req.UserInput)
	artifact, err := rendering.Export(&roadmap, &rendering.UserDetails{
		Grade:      req.Grade,
		Experience: req.Experience,
	}, format)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Body); err != nil {
		slog.Error("failed to write export", slog.Any("error", err))
	}
}
