package server

import (
	"net/http"

	"github.com/jonathan/career-mentor/internal/types"
)

// DomainsResponse lists the selectable domains and the ones with a dedicated template.
type DomainsResponse struct {
	Domains   []string `json:"domains"`
	Templates []string `json:"templates"`
}

// handleListDomains returns every catalog domain in declaration order
func (s *Server) handleListDomains(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, DomainsResponse{
		Domains:   s.catalog.Domains(),
		Templates: s.catalog.TemplateDomains(),
	})
}

func (s *Server) handleListGrades(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"grades": types.Grades})
}

func (s *Server) handleListExperienceLevels(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"experienceLevels": types.ExperienceLevels})
}
