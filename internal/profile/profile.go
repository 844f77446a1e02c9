// Package profile maintains the single user profile and its certificates.
package profile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-mentor/internal/db"
	"github.com/jonathan/career-mentor/internal/schemas"
	"github.com/jonathan/career-mentor/internal/types"
)

// Storage location of the profile document.
const (
	Collection = "profiles"
	Key        = "userProfile"
)

// ErrCertificateNotFound is returned for certificate ids not on the profile.
var ErrCertificateNotFound = errors.New("certificate not found")

//go:embed data/default_profile.json
var defaultProfileJSON []byte

// DefaultProfile returns the seeded profile served until the first update.
func DefaultProfile() types.UserProfile {
	var p types.UserProfile
	if err := json.Unmarshal(defaultProfileJSON, &p); err != nil {
		panic(fmt.Sprintf("failed to parse default profile: %v", err))
	}
	return p
}

// Service reads and updates the stored profile.
// Read-merge-write sequences are serialized by the service.
type Service struct {
	store db.Store
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides certificate id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a profile service over store.
func NewService(store db.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: func() string { return "cert-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored profile, or the default profile when none is stored.
func (s *Service) Get(ctx context.Context) (*types.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update merges the non-nil fields of u into the profile and stamps updatedAt.
func (s *Service) Update(ctx context.Context, u *types.ProfileUpdate) (*types.UserProfile, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	applyUpdate(p, u)
	p.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("profile updated", slog.String("id", p.ID))
	return p, nil
}

// AddCertificate appends a certificate with a newly assigned id.
func (s *Service) AddCertificate(ctx context.Context, in *types.CertificateInput) (*types.Certificate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	cert := certificateFromInput(s.newID(), in)
	p.Certificates = append(p.Certificates, cert)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("certificate added", slog.String("id", cert.ID), slog.String("title", cert.Title))
	return &cert, nil
}

// UpdateCertificate merges in into the certificate with the given id.
// Empty strings, a nil skill list and a nil verified flag leave the existing
// values in place.
func (s *Service) UpdateCertificate(ctx context.Context, id string, in *types.CertificateUpdate) (*types.Certificate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range p.Certificates {
		if p.Certificates[i].ID != id {
			continue
		}
		mergeCertificate(&p.Certificates[i], in)
		if err := s.save(ctx, p); err != nil {
			return nil, err
		}
		cert := p.Certificates[i]
		return &cert, nil
	}
	return nil, ErrCertificateNotFound
}

// DeleteCertificate removes the certificate with the given id.
func (s *Service) DeleteCertificate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]types.Certificate, 0, len(p.Certificates))
	for _, c := range p.Certificates {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(p.Certificates) {
		return ErrCertificateNotFound
	}
	p.Certificates = kept
	return s.save(ctx, p)
}

func (s *Service) load(ctx context.Context) (*types.UserProfile, error) {
	var p types.UserProfile
	err := s.store.Get(ctx, Collection, Key, &p)
	if errors.Is(err, db.ErrNotFound) {
		p = DefaultProfile()
		return &p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	normalize(&p)
	return &p, nil
}

func (s *Service) save(ctx context.Context, p *types.UserProfile) error {
	normalize(p)
	if err := schemas.ValidateProfile(p); err != nil {
		return fmt.Errorf("profile failed schema check: %w", err)
	}
	if err := s.store.Put(ctx, Collection, Key, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// normalize replaces nil lists with empty ones so the stored JSON never carries null arrays.
func normalize(p *types.UserProfile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Certificates == nil {
		p.Certificates = []types.Certificate{}
	}
	if p.CompletedRoadmaps == nil {
		p.CompletedRoadmaps = []string{}
	}
	if p.CurrentLearning == nil {
		p.CurrentLearning = []string{}
	}
	for i := range p.Certificates {
		if p.Certificates[i].Skills == nil {
			p.Certificates[i].Skills = []string{}
		}
	}
}

func applyUpdate(p *types.UserProfile, u *types.ProfileUpdate) {
	setString(&p.Name, u.Name)
	setString(&p.Email, u.Email)
	setString(&p.Title, u.Title)
	setString(&p.Location, u.Location)
	setString(&p.Bio, u.Bio)
	setString(&p.ProfileImage, u.ProfileImage)
	setString(&p.CoverImage, u.CoverImage)
	setString(&p.Experience, u.Experience)
	setString(&p.Education, u.Education)
	setString(&p.ExpectedSalary, u.ExpectedSalary)
	setString(&p.PreferredLocation, u.PreferredLocation)
	if u.Skills != nil {
		p.Skills = types.NormalizeSkills(*u.Skills)
	}
	if u.CompletedRoadmaps != nil {
		p.CompletedRoadmaps = append([]string{}, u.CompletedRoadmaps...)
	}
	if u.CurrentLearning != nil {
		p.CurrentLearning = append([]string{}, u.CurrentLearning...)
	}
	if u.SocialLinks != nil {
		p.SocialLinks = *u.SocialLinks
	}
	if u.IsAvailableForHire != nil {
		p.IsAvailableForHire = *u.IsAvailableForHire
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func certificateFromInput(id string, in *types.CertificateInput) types.Certificate {
	skills := []string(in.Skills)
	if skills == nil {
		skills = []string{}
	}
	return types.Certificate{
		ID:            id,
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     in.IssueDate,
		ExpiryDate:    in.ExpiryDate,
		CredentialID:  in.CredentialID,
		CredentialURL: in.CredentialURL,
		Skills:        skills,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Verified:      in.Verified,
	}
}

func mergeCertificate(c *types.Certificate, in *types.CertificateUpdate) {
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&c.Title, in.Title)
	merge(&c.Issuer, in.Issuer)
	merge(&c.IssueDate, in.IssueDate)
	merge(&c.ExpiryDate, in.ExpiryDate)
	merge(&c.CredentialID, in.CredentialID)
	merge(&c.CredentialURL, in.CredentialURL)
	merge(&c.Description, in.Description)
	merge(&c.ImageURL, in.ImageURL)
	if in.Skills != nil {
		c.Skills = []string(in.Skills)
	}
	if in.Verified != nil {
		c.Verified = *in.Verified
	}
}
