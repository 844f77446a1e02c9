package rendering

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-mentor/internal/types"
)

func sampleRoadmap() *types.CareerRoadmap {
	return &types.CareerRoadmap{
		Domain: "Data Science",
		Roadmap: []types.CareerPhase{
			{
				Phase:         "Beginner",
				Skills:        []string{"a", "b"},
				FreeResources: []string{"https://x.io/?a=1&b=2|X Docs", "Khan Academy"},
				PaidResources: []string{"https://p.io|Paid"},
				Projects:      []string{"P1"},
				YouTubeVideos: []types.YouTubeVideo{},
			},
			{
				Phase:         "Intermediate",
				Skills:        []string{"c"},
				FreeResources: []string{},
				PaidResources: []string{},
				Projects:      []string{"P2"},
				YouTubeVideos: []types.YouTubeVideo{},
			},
		},
		CareerPaths:   []string{"Analyst"},
		Companies:     []string{"Acme"},
		InterviewPrep: []string{"SQL"},
	}
}

const wantTextBody = `CAREER ROADMAP
==============

Domain: Data Science
Education Level: College Junior
Experience Level: Intermediate

LEARNING ROADMAP
================


1. BEGINNER PHASE
==================

Skills to Learn:
• a
• b

Free Resources:
• X Docs: https://x.io/?a=1&b=2
• Khan Academy: Khan Academy

Paid Resources:
• Paid: https://p.io

Project Ideas:
• P1


2. INTERMEDIATE PHASE
======================

Skills to Learn:
• c

Free Resources:


Paid Resources:


Project Ideas:
• P2


CAREER INFORMATION
==================

Possible Job Roles:
• Analyst

Top Companies:
• Acme

Interview Preparation:
• SQL

JSON FORMAT
===========
`

func TestRenderText_Layout(t *testing.T) {
	roadmap := sampleRoadmap()
	out, err := RenderText(roadmap, &UserDetails{Grade: "College Junior", Experience: "Intermediate"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, wantTextBody), "got:\n%s", out)

	jsonPart := strings.TrimPrefix(out, wantTextBody)
	var back types.CareerRoadmap
	require.NoError(t, json.Unmarshal([]byte(jsonPart), &back))
	assert.Equal(t, *roadmap, back)
	assert.Contains(t, jsonPart, "\n  \"domain\": \"Data Science\"")
}

func TestRenderText_WithoutDetails(t *testing.T) {
	out, err := RenderText(sampleRoadmap(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Domain: Data Science\n\n\n\nLEARNING ROADMAP")
	assert.NotContains(t, out, "Education Level")
}

func TestRenderText_Trimmed(t *testing.T) {
	out, err := RenderText(sampleRoadmap(), nil)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(out), out)
	assert.True(t, strings.HasSuffix(out, "}"))
}

func TestRenderText_NilRoadmap(t *testing.T) {
	_, err := RenderText(nil, nil)
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderTextFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.Domain}}\n{{range .Phases}}{{.Number}}:{{.Title}}\n{{end}}"), 0644))

	out, err := RenderTextFromFile(sampleRoadmap(), nil, path)
	require.NoError(t, err)
	assert.Equal(t, "Data Science\n1:BEGINNER\n2:INTERMEDIATE", out)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.tmpl")
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "invalid.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{.InvalidSyntax{{}}"), 0644))

	_, err := parseTemplate(path)
	assert.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestBullets(t *testing.T) {
	assert.Equal(t, "", Bullets(nil))
	assert.Equal(t, "• one", Bullets([]string{"one"}))
	assert.Equal(t, "• one\n• two", Bullets([]string{"one", "two"}))
}

func TestRenderJSON_PreservesResourceStrings(t *testing.T) {
	roadmap := sampleRoadmap()
	out, err := RenderJSON(roadmap)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"https://x.io/?a=1&b=2|X Docs"`)
	assert.True(t, strings.HasPrefix(string(out), "{\n  \"domain\""))
	assert.False(t, strings.HasSuffix(string(out), "\n"))

	var back types.CareerRoadmap
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *roadmap, back)
}

func TestResourceLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"link", "https://go.dev|Go", "Go: https://go.dev"},
		{"bare label", "Khan Academy", "Khan Academy: Khan Academy"},
		{"empty url", "|Name", "Name: "},
		{"placeholder url", "#|Name", "Name: #"},
		{"extra separator", "https://a.io|A|B", "A: https://a.io"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, resourceLines([]string{tt.in}))
		})
	}
}
