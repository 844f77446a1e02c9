package rendering

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-mentor/internal/types"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseFormat maps a user-supplied format name to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &RenderError{Message: fmt.Sprintf("unsupported export format %q (want text or json)", s)}
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return "json"
	}
	return "txt"
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// ExportFilename builds the download name: whitespace runs in the domain become
// "_" and "_Career_Roadmap.<ext>" is appended.
func ExportFilename(domain, ext string) string {
	return whitespaceRun.ReplaceAllString(domain, "_") + "_Career_Roadmap." + ext
}

// Artifact is a rendered export ready to be written or served.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Export renders roadmap in the requested format.
func Export(roadmap *types.CareerRoadmap, details *UserDetails, format Format) (*Artifact, error) {
	if roadmap == nil {
		return nil, &RenderError{Message: "roadmap is nil"}
	}

	var body []byte
	switch format {
	case FormatText:
		text, err := RenderText(roadmap, details)
		if err != nil {
			return nil, err
		}
		body = []byte(text)
	case FormatJSON:
		out, err := RenderJSON(roadmap)
		if err != nil {
			return nil, err
		}
		body = out
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unsupported export format %q", format)}
	}

	return &Artifact{
		Filename:    ExportFilename(roadmap.Domain, format.Extension()),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}
