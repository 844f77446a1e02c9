package rendering

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/career-mentor/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

const defaultTextTemplate = "templates/roadmap.txt.tmpl"

// UserDetails are the optional profile lines printed under the domain header.
type UserDetails struct {
	Grade      string
	Experience string
}

// TemplateData represents the data structure passed to the text template
type TemplateData struct {
	Domain        string
	Details       *UserDetails
	Phases        []PhaseSection
	CareerPaths   []string
	Companies     []string
	InterviewPrep []string
	JSON          string
}

// PhaseSection is one numbered phase of the text export
type PhaseSection struct {
	Number        int
	Title         string // upper-cased phase label
	Underline     string // "=" repeated len(phase)+10 times
	Skills        []string
	FreeResources []string // "name: url"
	PaidResources []string
	Projects      []string
}

// RenderText renders the plain-text download of a roadmap using the built-in template.
// details may be nil, in which case the education and experience lines are left blank.
func RenderText(roadmap *types.CareerRoadmap, details *UserDetails) (string, error) {
	content, err := templateFiles.ReadFile(defaultTextTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to read built-in template", Cause: err}
	}
	tmpl, err := newTemplate(string(content))
	if err != nil {
		return "", err
	}
	return execute(tmpl, roadmap, details)
}

// RenderTextFromFile renders the roadmap with a caller-supplied template file.
func RenderTextFromFile(roadmap *types.CareerRoadmap, details *UserDetails, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return execute(tmpl, roadmap, details)
}

func execute(tmpl *template.Template, roadmap *types.CareerRoadmap, details *UserDetails) (string, error) {
	data, err := buildTemplateData(roadmap, details)
	if err != nil {
		return "", &RenderError{
			Message: "failed to build template data",
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return strings.TrimSpace(result.String()), nil
}

// parseTemplate reads and parses a text template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTemplate(string(content))
}

func newTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("roadmap").Funcs(template.FuncMap{
		"bullets": Bullets,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData constructs the template data structure from a roadmap
func buildTemplateData(roadmap *types.CareerRoadmap, details *UserDetails) (*TemplateData, error) {
	if roadmap == nil {
		return nil, fmt.Errorf("roadmap is nil")
	}

	encoded, err := marshalIndent(roadmap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roadmap: %w", err)
	}

	phases := make([]PhaseSection, len(roadmap.Roadmap))
	for i, p := range roadmap.Roadmap {
		phases[i] = PhaseSection{
			Number:        i + 1,
			Title:         strings.ToUpper(p.Phase),
			Underline:     strings.Repeat("=", len(p.Phase)+10),
			Skills:        p.Skills,
			FreeResources: resourceLines(p.FreeResources),
			PaidResources: resourceLines(p.PaidResources),
			Projects:      p.Projects,
		}
	}

	return &TemplateData{
		Domain:        roadmap.Domain,
		Details:       details,
		Phases:        phases,
		CareerPaths:   roadmap.CareerPaths,
		Companies:     roadmap.Companies,
		InterviewPrep: roadmap.InterviewPrep,
		JSON:          string(encoded),
	}, nil
}

// resourceLines formats "url|name" resources as "name: url", even when the url is
// empty. Labels without a separator print as "label: label".
func resourceLines(resources []string) []string {
	lines := make([]string, len(resources))
	for i, r := range resources {
		if url, rest, ok := strings.Cut(r, "|"); ok {
			name, _, _ := strings.Cut(rest, "|")
			lines[i] = name + ": " + url
		} else {
			lines[i] = r + ": " + r
		}
	}
	return lines
}

// Bullets renders items one per line, each prefixed with "• ".
func Bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}

// RenderJSON encodes the roadmap as 2-space indented JSON. Strings are written
// verbatim, so resource URLs keep their "&" and "<" characters.
func RenderJSON(roadmap *types.CareerRoadmap) ([]byte, error) {
	if roadmap == nil {
		return nil, &RenderError{Message: "roadmap is nil"}
	}
	out, err := marshalIndent(roadmap)
	if err != nil {
		return nil, &RenderError{Message: "failed to encode roadmap", Cause: err}
	}
	return out, nil
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
