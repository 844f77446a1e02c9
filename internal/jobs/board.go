// Package jobs implements the job board: postings, filtering, and applications.
package jobs

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-mentor/internal/db"
	"github.com/jonathan/career-mentor/internal/types"
)

// Collection is the store collection holding job postings.
const Collection = "jobs"

var (
	// ErrJobNotFound is returned for unknown job ids.
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned for unknown application ids.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrJobClosed is returned when applying to an inactive posting.
	ErrJobClosed = errors.New("job is no longer accepting applications")
)

//go:embed data/seed_jobs.json
var seedJobsJSON []byte

// SeedJobs returns the sample postings the board starts with.
func SeedJobs() []types.JobPosting {
	var jobs []types.JobPosting
	if err := json.Unmarshal(seedJobsJSON, &jobs); err != nil {
		panic(fmt.Sprintf("failed to parse seed jobs: %v", err))
	}
	return jobs
}

// Filter narrows the job list. Zero values match everything.
type Filter struct {
	Search   string
	Location string
	Type     types.JobType
	Remote   bool
}

// Matches reports whether job passes every filter field.
func (f Filter) Matches(job *types.JobPosting) bool {
	search := strings.ToLower(f.Search)
	matchesSearch := strings.Contains(strings.ToLower(job.Title), search) ||
		strings.Contains(strings.ToLower(job.Company), search)
	if !matchesSearch {
		for _, skill := range job.Skills {
			if strings.Contains(strings.ToLower(skill), search) {
				matchesSearch = true
				break
			}
		}
	}
	matchesLocation := f.Location == "" || strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location))
	matchesType := f.Type == "" || job.Type == f.Type
	matchesRemote := !f.Remote || job.Remote

	return matchesSearch && matchesLocation && matchesType && matchesRemote
}

// Board stores postings and their applications.
type Board struct {
	store db.Store
	mu    sync.Mutex
	now   func() time.Time
	newID func(prefix string) string
}

// Option configures a Board.
type Option func(*Board)

// WithClock overrides the time source for postedAt and appliedAt.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithIDGenerator overrides id generation; prefix is "job" or "app".
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(b *Board) { b.newID = newID }
}

// NewBoard creates a board over store.
func NewBoard(store db.Store, opts ...Option) *Board {
	b := &Board{
		store: store,
		now:   time.Now,
		newID: func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Seed stores the sample postings when the board is empty.
func (b *Board) Seed(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	docs, err := b.store.List(ctx, Collection)
	if err != nil {
		return fmt.Errorf("failed to check job board: %w", err)
	}
	if len(docs) > 0 {
		return nil
	}
	for _, job := range SeedJobs() {
		if err := b.store.Put(ctx, Collection, job.ID, job); err != nil {
			return fmt.Errorf("failed to seed job %s: %w", job.ID, err)
		}
	}
	slog.Info("job board seeded", slog.Int("jobs", len(SeedJobs())))
	return nil
}

// List returns the postings that match f, in posting order.
func (b *Board) List(ctx context.Context, f Filter) ([]types.JobPosting, error) {
	all, err := db.ListAs[types.JobPosting](ctx, b.store, Collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	out := make([]types.JobPosting, 0, len(all))
	for i := range all {
		if f.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Get returns one posting.
func (b *Board) Get(ctx context.Context, id string) (*types.JobPosting, error) {
	var job types.JobPosting
	if err := b.store.Get(ctx, Collection, id, &job); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return &job, nil
}

// Post adds a new active posting with no applications.
func (b *Board) Post(ctx context.Context, in *types.JobPostingInput) (*types.JobPosting, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	job := types.JobPosting{
		ID:           b.newID("job"),
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Type:         in.Type,
		Remote:       in.Remote,
		Salary:       in.Salary,
		Description:  in.Description,
		Requirements: orEmpty(in.Requirements),
		Benefits:     orEmpty(in.Benefits),
		Skills:       orEmpty(in.Skills),
		Experience:   in.Experience,
		Education:    in.Education,
		PostedBy:     in.PostedBy,
		PostedAt:     b.now().UTC().Format(time.RFC3339),
		ExpiresAt:    in.ExpiresAt,
		IsActive:     true,
		Applications: []types.JobApplication{},
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.store.Put(ctx, Collection, job.ID, job); err != nil {
		return nil, fmt.Errorf("failed to post job: %w", err)
	}
	slog.Info("job posted", slog.String("id", job.ID), slog.String("title", job.Title))
	return &job, nil
}

// Apply records a pending application from userID on jobID.
func (b *Board) Apply(ctx context.Context, jobID, userID, coverLetter string) (*types.JobApplication, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	job, err := b.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrJobClosed
	}

	app := types.JobApplication{
		ID:          b.newID("app"),
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: coverLetter,
		Status:      types.ApplicationPending,
		AppliedAt:   b.now().UTC().Format(time.RFC3339),
	}
	job.Applications = append(job.Applications, app)
	if err := b.store.Put(ctx, Collection, job.ID, job); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}
	slog.Info("application submitted", slog.String("job_id", jobID), slog.String("application_id", app.ID))
	return &app, nil
}

// ApplicationsForUser returns every application userID made, across all postings.
func (b *Board) ApplicationsForUser(ctx context.Context, userID string) ([]types.JobApplication, error) {
	all, err := b.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	var apps []types.JobApplication
	for _, job := range all {
		for _, app := range job.Applications {
			if app.UserID == userID {
				apps = append(apps, app)
			}
		}
	}
	if apps == nil {
		apps = []types.JobApplication{}
	}
	return apps, nil
}

// UpdateApplicationStatus changes the status of an application wherever it is filed.
func (b *Board) UpdateApplicationStatus(ctx context.Context, appID string, u *types.ApplicationStatusUpdate) (*types.JobApplication, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	all, err := b.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	for _, job := range all {
		for i := range job.Applications {
			app := &job.Applications[i]
			if app.ID != appID {
				continue
			}
			app.Status = u.Status
			if u.Notes != "" {
				app.Notes = u.Notes
			}
			if u.InterviewScheduled != "" {
				app.InterviewScheduled = u.InterviewScheduled
			}
			if err := b.store.Put(ctx, Collection, job.ID, job); err != nil {
				return nil, fmt.Errorf("failed to update application: %w", err)
			}
			updated := *app
			return &updated, nil
		}
	}
	return nil, ErrApplicationNotFound
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
