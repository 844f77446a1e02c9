package server

import (
	"net/http"

	"github.com/jonathan/career-mentor/internal/types"
)

// handleGetProfile returns the stored profile, or the seeded one before the first update
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleUpdateProfile merges the supplied fields into the profile
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var u types.ProfileUpdate
	if err := decodeJSON(w, r, &u); err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.profiles.Update(r.Context(), &u)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleAddCertificate(w http.ResponseWriter, r *http.Request) {
	var in types.CertificateInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	c, err := s.profiles.AddCertificate(r.Context(), &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var in types.CertificateUpdate
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	c, err := s.profiles.UpdateCertificate(r.Context(), id, &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCertificate(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.DeleteCertificate(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListMyApplications lists the profile owner's applications across all postings
func (s *Server) handleListMyApplications(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	apps, err := s.board.ApplicationsForUser(r.Context(), p.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": apps,
		"count":        len(apps),
	})
}
