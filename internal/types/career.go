// Package types provides type definitions for structured data used throughout the career-mentor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NoSkillsSentinel is the skills value sent by the form when nothing was selected.
const NoSkillsSentinel = "No programming experience"

// Phase labels, in progression order.
const (
	PhaseBeginner     = "Beginner"
	PhaseIntermediate = "Intermediate"
	PhaseAdvanced     = "Advanced"
)

// PhaseOrder lists the phase labels every roadmap carries, in order.
var PhaseOrder = []string{PhaseBeginner, PhaseIntermediate, PhaseAdvanced}

// Experience levels accepted by the form.
const (
	ExperienceCompleteBeginner = "Complete Beginner"
	ExperienceBasic            = "Some Basic Knowledge"
	ExperienceIntermediate     = "Intermediate"
	ExperienceAdvanced         = "Advanced"
	ExperienceExpert           = "Expert"
)

// ExperienceLevels is the closed set of experience values, in display order.
var ExperienceLevels = []string{
	ExperienceCompleteBeginner,
	ExperienceBasic,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperienceExpert,
}

// Grades is the set of education levels the form offers, in display order.
var Grades = []string{
	"High School (9th-12th)",
	"College Freshman",
	"College Sophomore",
	"College Junior",
	"College Senior",
	"Graduate Student",
	"Recent Graduate",
	"Working Professional",
}

// UserInput is the form submission consumed by the roadmap generator.
type UserInput struct {
	Interests      string `json:"interests"`
	Skills         string `json:"skills"`
	SelectedDomain string `json:"selectedDomain,omitempty"`
	Grade          string `json:"grade"`
	Experience     string `json:"experience"`
}

// RoadmapRequest is the HTTP/CLI request wrapper around UserInput.
// The generator itself tolerates any input; these rules mirror what the form enforces.
type RoadmapRequest struct {
	UserInput
}

// Validate checks that the request carries interests or skills plus both profile fields.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	if err := validate.Var(r.Grade, "required"); err != nil {
		return &FieldError{Field: "grade", Message: "is required"}
	}
	if !slices.Contains(ExperienceLevels, r.Experience) {
		return &FieldError{Field: "experience", Message: "must be one of: " + strings.Join(ExperienceLevels, ", ")}
	}
	if strings.TrimSpace(r.Interests) == "" && strings.TrimSpace(r.Skills) == "" && strings.TrimSpace(r.SelectedDomain) == "" {
		return &FieldError{Field: "interests", Message: "interests, skills or selectedDomain is required"}
	}
	return nil
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

// CareerRoadmap is both the generator output and the record type of the template catalog.
type CareerRoadmap struct {
	Domain        string        `json:"domain"`
	Roadmap       []CareerPhase `json:"roadmap"`
	CareerPaths   []string      `json:"career_paths"`
	Companies     []string      `json:"companies"`
	InterviewPrep []string      `json:"interview_prep"`
}

// CareerPhase is one progression stage of a roadmap.
type CareerPhase struct {
	Phase         string         `json:"phase"`
	Skills        []string       `json:"skills"`
	FreeResources []string       `json:"free_resources"`
	PaidResources []string       `json:"paid_resources"`
	Projects      []string       `json:"projects"`
	YouTubeVideos []YouTubeVideo `json:"youtube_videos"`
}

// YouTubeVideo is a display-only video recommendation.
type YouTubeVideo struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	URL         string `json:"url"`
	Duration    string `json:"duration"`
	Views       string `json:"views"`
	Description string `json:"description"`
}

// Clone returns a deep copy sharing no slices with r.
func (r *CareerRoadmap) Clone() CareerRoadmap {
	out := CareerRoadmap{
		Domain:        r.Domain,
		CareerPaths:   cloneStrings(r.CareerPaths),
		Companies:     cloneStrings(r.Companies),
		InterviewPrep: cloneStrings(r.InterviewPrep),
	}
	if r.Roadmap != nil {
		out.Roadmap = make([]CareerPhase, len(r.Roadmap))
		for i := range r.Roadmap {
			out.Roadmap[i] = r.Roadmap[i].Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the phase.
func (p *CareerPhase) Clone() CareerPhase {
	out := CareerPhase{
		Phase:         p.Phase,
		Skills:        cloneStrings(p.Skills),
		FreeResources: cloneStrings(p.FreeResources),
		PaidResources: cloneStrings(p.PaidResources),
		Projects:      cloneStrings(p.Projects),
	}
	if p.YouTubeVideos != nil {
		out.YouTubeVideos = make([]YouTubeVideo, len(p.YouTubeVideos))
		copy(out.YouTubeVideos, p.YouTubeVideos)
	}
	return out
}

// PhaseNames returns the phase labels in roadmap order.
func (r *CareerRoadmap) PhaseNames() []string {
	names := make([]string, len(r.Roadmap))
	for i, p := range r.Roadmap {
		names[i] = p.Phase
	}
	return names
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Resource is the parsed form of a "<url>|<displayName>" resource string.
type Resource struct {
	URL  string
	Name string
}

// ParseResource splits a resource string on its first "|".
// A bare label resolves to URL "#" with the label as its name.
func ParseResource(s string) Resource {
	if url, name, ok := strings.Cut(s, "|"); ok {
		return Resource{URL: url, Name: name}
	}
	return Resource{URL: "#", Name: s}
}

// HasLink reports whether the resource carries a real URL.
func (r Resource) HasLink() bool {
	return r.URL != "#" && r.URL != ""
}

// String encodes the resource back into its legacy wire form.
func (r Resource) String() string {
	if !r.HasLink() {
		return r.Name
	}
	return r.URL + "|" + r.Name
}
