package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-mentor/internal/schemas"
	schemafiles "github.com/jonathan/career-mentor/schemas"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemafiles.All() {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemafiles.All() {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemafiles.FS.ReadFile(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func TestEmbeddedFS_MatchesDisk(t *testing.T) {
	for _, schemaFile := range schemafiles.All() {
		embedded, err := schemafiles.FS.ReadFile(schemaFile)
		require.NoError(t, err)
		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, onDisk, embedded, schemaFile)
	}
}

func TestCareerRoadmapSchema_ValidatesFromDisk(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{
		"domain": "DevOps",
		"roadmap": [
			{"phase": "Beginner", "skills": [], "free_resources": ["Khan Academy"], "paid_resources": [], "projects": [], "youtube_videos": []},
			{"phase": "Intermediate", "skills": [], "free_resources": [], "paid_resources": [], "projects": [], "youtube_videos": []},
			{"phase": "Advanced", "skills": [], "free_resources": [], "paid_resources": ["https://a.example|A"], "projects": [], "youtube_videos": []}
		],
		"career_paths": [],
		"companies": [],
		"interview_prep": []
	}`), 0644))

	err := schemas.ValidateJSON(schemafiles.CareerRoadmap, doc)
	assert.NoError(t, err)
}
