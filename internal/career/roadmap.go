package career

import (
	"strings"

	"github.com/jonathan/career-mentor/internal/types"
)

// Entries added by the experience and grade adjustments.
var (
	beginnerPrelude      = []string{"Computer basics", "Problem-solving fundamentals"}
	highSchoolResources  = []string{"Khan Academy", "Codecademy free tier"}
	professionalPaidTail = []string{"Professional certifications", "Executive education"}
)

// Generate resolves the domain for input and returns a personalized copy of its template.
// Unknown domains fall back to the FallbackDomain template, whose own domain label is
// returned unchanged. Generate never fails and never mutates the catalog.
func (c *Catalog) Generate(input types.UserInput) types.CareerRoadmap {
	key := c.ResolveDomain(input.SelectedDomain, input.Interests, input.Skills)

	tmpl, ok := c.templates[key]
	if !ok {
		tmpl = c.templates[FallbackDomain]
	}

	roadmap := tmpl.Clone()
	roadmap.Roadmap = adjustForExperience(roadmap.Roadmap, input.Experience)
	roadmap.Roadmap = adjustForGrade(roadmap.Roadmap, input.Grade)
	return roadmap
}

// GenerateCareerRoadmap builds a roadmap for input from the embedded catalog.
func GenerateCareerRoadmap(input types.UserInput) types.CareerRoadmap {
	return defaultCatalog.Generate(input)
}

func adjustForExperience(phases []types.CareerPhase, experience string) []types.CareerPhase {
	switch experience {
	case types.ExperienceCompleteBeginner:
		return withPhase(phases, 0, func(p *types.CareerPhase) {
			p.Skills = concat(beginnerPrelude, p.Skills)
		})
	case types.ExperienceAdvanced, types.ExperienceExpert:
		return withPhase(phases, 0, func(p *types.CareerPhase) {
			p.Skills = dropFirst(p.Skills, 2)
		})
	default:
		return phases
	}
}

func adjustForGrade(phases []types.CareerPhase, grade string) []types.CareerPhase {
	switch {
	case strings.Contains(grade, "High School"):
		return withPhase(phases, 0, func(p *types.CareerPhase) {
			p.FreeResources = concat(highSchoolResources, p.FreeResources)
		})
	case strings.Contains(grade, "Graduate") || grade == "Working Professional":
		return withPhase(phases, 2, func(p *types.CareerPhase) {
			p.PaidResources = concat(p.PaidResources, professionalPaidTail)
		})
	default:
		return phases
	}
}

// withPhase returns a new phase slice where phases[i] has been replaced by a modified copy.
// Indexes past the end leave the slice untouched.
func withPhase(phases []types.CareerPhase, i int, fn func(*types.CareerPhase)) []types.CareerPhase {
	if i >= len(phases) {
		return phases
	}
	out := make([]types.CareerPhase, len(phases))
	copy(out, phases)
	p := out[i]
	fn(&p)
	out[i] = p
	return out
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func dropFirst(s []string, n int) []string {
	if len(s) <= n {
		return []string{}
	}
	out := make([]string, len(s)-n)
	copy(out, s[n:])
	return out
}
