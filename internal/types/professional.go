package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SocialLinks holds optional profile links.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// UserProfile is the single professional profile maintained by the dashboard.
type UserProfile struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Title              string        `json:"title"`
	Location           string        `json:"location"`
	Bio                string        `json:"bio"`
	ProfileImage       string        `json:"profileImage,omitempty"`
	CoverImage         string        `json:"coverImage,omitempty"`
	Skills             []string      `json:"skills"`
	Experience         string        `json:"experience"`
	Education          string        `json:"education"`
	Certificates       []Certificate `json:"certificates"`
	CompletedRoadmaps  []string      `json:"completedRoadmaps"`
	CurrentLearning    []string      `json:"currentLearning"`
	SocialLinks        SocialLinks   `json:"socialLinks"`
	IsAvailableForHire bool          `json:"isAvailableForHire"`
	ExpectedSalary     string        `json:"expectedSalary,omitempty"`
	PreferredLocation  string        `json:"preferredLocation,omitempty"`
	CreatedAt          string        `json:"createdAt"`
	UpdatedAt          string        `json:"updatedAt"`
}

// ProfileUpdate is a partial profile update; nil fields are left unchanged.
// Skills may be sent either as a list or as a comma-separated string.
type ProfileUpdate struct {
	Name               *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	Email              *string      `json:"email,omitempty" validate:"omitempty,email"`
	Title              *string      `json:"title,omitempty"`
	Location           *string      `json:"location,omitempty"`
	Bio                *string      `json:"bio,omitempty"`
	ProfileImage       *string      `json:"profileImage,omitempty"`
	CoverImage         *string      `json:"coverImage,omitempty"`
	Skills             *SkillList   `json:"skills,omitempty"`
	Experience         *string      `json:"experience,omitempty"`
	Education          *string      `json:"education,omitempty"`
	CompletedRoadmaps  []string     `json:"completedRoadmaps,omitempty"`
	CurrentLearning    []string     `json:"currentLearning,omitempty"`
	SocialLinks        *SocialLinks `json:"socialLinks,omitempty"`
	IsAvailableForHire *bool        `json:"isAvailableForHire,omitempty"`
	ExpectedSalary     *string      `json:"expectedSalary,omitempty"`
	PreferredLocation  *string      `json:"preferredLocation,omitempty"`
}

// Validate validates the ProfileUpdate using the validator.
func (u *ProfileUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// Certificate is a course or platform credential attached to the profile.
type Certificate struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Issuer        string   `json:"issuer"`
	IssueDate     string   `json:"issueDate"`
	ExpiryDate    string   `json:"expiryDate,omitempty"`
	CredentialID  string   `json:"credentialId,omitempty"`
	CredentialURL string   `json:"credentialUrl,omitempty"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Verified      bool     `json:"verified"`
}

// CertificateInput is the add/edit form for a certificate.
type CertificateInput struct {
	Title         string    `json:"title" validate:"required"`
	Issuer        string    `json:"issuer" validate:"required"`
	IssueDate     string    `json:"issueDate" validate:"required"`
	ExpiryDate    string    `json:"expiryDate,omitempty"`
	CredentialID  string    `json:"credentialId,omitempty"`
	CredentialURL string    `json:"credentialUrl,omitempty" validate:"omitempty,url"`
	Skills        SkillList `json:"skills"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Verified      bool      `json:"verified"`
}

// Validate validates the CertificateInput using the validator.
func (c *CertificateInput) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// CertificateUpdate is a partial edit of a stored certificate. Empty fields
// and a nil skill list or verified flag keep the stored values.
type CertificateUpdate struct {
	Title         string    `json:"title,omitempty"`
	Issuer        string    `json:"issuer,omitempty"`
	IssueDate     string    `json:"issueDate,omitempty"`
	ExpiryDate    string    `json:"expiryDate,omitempty"`
	CredentialID  string    `json:"credentialId,omitempty"`
	CredentialURL string    `json:"credentialUrl,omitempty" validate:"omitempty,url"`
	Skills        SkillList `json:"skills,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Verified      *bool     `json:"verified,omitempty"`
}

// Validate validates the CertificateUpdate using the validator.
func (c *CertificateUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// JobType is the employment type of a posting.
type JobType string

// Job types offered by the board.
const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// Salary is a posted salary range.
type Salary struct {
	Min      int    `json:"min" validate:"gte=0"`
	Max      int    `json:"max" validate:"gtefield=Min"`
	Currency string `json:"currency" validate:"required"`
}

// JobPosting is a job on the board together with its applications.
type JobPosting struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Company      string           `json:"company"`
	Location     string           `json:"location"`
	Type         JobType          `json:"type"`
	Remote       bool             `json:"remote"`
	Salary       *Salary          `json:"salary,omitempty"`
	Description  string           `json:"description"`
	Requirements []string         `json:"requirements"`
	Benefits     []string         `json:"benefits"`
	Skills       []string         `json:"skills"`
	Experience   string           `json:"experience"`
	Education    string           `json:"education"`
	PostedBy     string           `json:"postedBy"`
	PostedAt     string           `json:"postedAt"`
	ExpiresAt    string           `json:"expiresAt,omitempty"`
	IsActive     bool             `json:"isActive"`
	Applications []JobApplication `json:"applications"`
}

// JobPostingInput is the payload for posting a new job.
type JobPostingInput struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         JobType  `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Remote       bool     `json:"remote"`
	Salary       *Salary  `json:"salary,omitempty" validate:"omitempty"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	PostedBy     string   `json:"postedBy"`
	ExpiresAt    string   `json:"expiresAt,omitempty"`
}

// Validate validates the JobPostingInput using the validator.
func (j *JobPostingInput) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

// Application statuses, in pipeline order.
const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// JobApplication is one user's application to a posting.
type JobApplication struct {
	ID                 string            `json:"id"`
	JobID              string            `json:"jobId"`
	UserID             string            `json:"userId"`
	CoverLetter        string            `json:"coverLetter,omitempty"`
	Status             ApplicationStatus `json:"status"`
	AppliedAt          string            `json:"appliedAt"`
	Notes              string            `json:"notes,omitempty"`
	InterviewScheduled string            `json:"interviewScheduled,omitempty"`
}

// ApplyRequest is the payload for applying to a job.
type ApplyRequest struct {
	CoverLetter string `json:"coverLetter,omitempty" validate:"max=10000"`
}

// Validate validates the ApplyRequest using the validator.
func (a *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// ApplicationStatusUpdate is the HR-side status change payload.
type ApplicationStatusUpdate struct {
	Status             ApplicationStatus `json:"status" validate:"required,oneof=pending reviewed interview accepted rejected"`
	Notes              string            `json:"notes,omitempty"`
	InterviewScheduled string            `json:"interviewScheduled,omitempty"`
}

// Validate validates the ApplicationStatusUpdate using the validator.
func (u *ApplicationStatusUpdate) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// SkillList is a list of skills that also accepts the form's comma-separated string.
type SkillList []string

// UnmarshalJSON accepts either a JSON array of strings or a single comma-separated string.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = NormalizeSkills(list)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("skills must be a list or a comma-separated string: %w", err)
	}
	*s = ParseSkills(raw)
	return nil
}

// ParseSkills splits comma-separated skill input, trimming entries and dropping empties.
func ParseSkills(raw string) []string {
	return NormalizeSkills(strings.Split(raw, ","))
}

// NormalizeSkills trims every entry and drops the empty ones.
func NormalizeSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
