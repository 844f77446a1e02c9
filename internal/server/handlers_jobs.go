package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/career-mentor/internal/jobs"
	"github.com/jonathan/career-mentor/internal/types"
)

// JobView is a posting plus its display strings.
type JobView struct {
	types.JobPosting
	SalaryText string `json:"salaryText"`
	PostedAgo  string `json:"postedAgo"`
}

// ListJobsResponse represents the response for listing job postings
type ListJobsResponse struct {
	Jobs  []JobView `json:"jobs"`
	Count int       `json:"count"`
}

func (s *Server) jobView(job *types.JobPosting) JobView {
	return JobView{
		JobPosting: *job,
		SalaryText: jobs.FormatSalary(job.Salary),
		PostedAgo:  jobs.PostedAgo(job.PostedAt, s.now()),
	}
}

// handleListJobs lists postings matching the search, location, type and remote filters
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := jobs.Filter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Type:     types.JobType(q.Get("type")),
	}
	if raw := q.Get("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			s.fail(w, r, &ErrValidation{Field: "remote", Message: "must be a boolean"})
			return
		}
		filter.Remote = remote
	}

	found, err := s.board.List(r.Context(), filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	views := make([]JobView, 0, len(found))
	for i := range found {
		views = append(views, s.jobView(&found[i]))
	}
	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: views, Count: len(views)})
}

// handleGetJob retrieves a job posting by its ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.board.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.jobView(job))
}

func (s *Server) handlePostJob(w http.ResponseWriter, r *http.Request) {
	var in types.JobPostingInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}

	job, err := s.board.Post(r.Context(), &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, s.jobView(job))
}

// handleApply files an application from the profile owner. The body is optional.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req types.ApplyRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := s.profiles.Get(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.board.Apply(r.Context(), r.PathValue("id"), p.ID, req.CoverLetter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var u types.ApplicationStatusUpdate
	if err := decodeJSON(w, r, &u); err != nil {
		s.fail(w, r, err)
		return
	}

	app, err := s.board.UpdateApplicationStatus(r.Context(), r.PathValue("id"), &u)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}
