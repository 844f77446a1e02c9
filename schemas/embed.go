// Package schemas holds the JSON Schema documents for the career-mentor data artifacts.
package schemas

import "embed"

// Schema file names.
const (
	CareerRoadmap = "career_roadmap.schema.json"
	UserInput     = "user_input.schema.json"
	UserProfile   = "user_profile.schema.json"
	JobPosting    = "job_posting.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// All lists the schema file names in a stable order.
func All() []string {
	return []string{CareerRoadmap, UserInput, UserProfile, JobPosting}
}
