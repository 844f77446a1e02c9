package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"interests": "web", "skills": "", "grade": "College Senior", "experience": "Expert"}`), 0644))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"interests": "web"}`), 0644))

	tests := []struct {
		name      string
		args      []string
		wantError bool
		contains  string
	}{
		{"valid input", []string{"validate", "--kind", "input", valid}, false, "✓"},
		{"invalid input", []string{"validate", "--kind", "input", valid, invalid}, true, "1 of 2 documents failed validation"},
		{"unknown kind", []string{"validate", "--kind", "resume", valid}, true, "unknown document kind"},
		{"no files", []string{"validate"}, true, "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = cleanEnv()
			output, err := cmd.CombinedOutput()

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err, string(output))
			}
			assert.Contains(t, string(output), tt.contains)
		})
	}
}
