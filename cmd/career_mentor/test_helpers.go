package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the career_mentor binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "career_mentor"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/career_mentor ./cmd/career_mentor'", binaryPath)
	}

	return binaryPath
}

// cleanEnv returns the process environment without the keys that change CLI behavior.
func cleanEnv(extra ...string) []string {
	var env []string
	for _, kv := range os.Environ() {
		switch {
		case hasKey(kv, "GEMINI_API_KEY"), hasKey(kv, "DATABASE_URL"), hasKey(kv, "LOG_LEVEL"), hasKey(kv, "PORT"):
			continue
		}
		env = append(env, kv)
	}
	return append(env, extra...)
}

func hasKey(kv, key string) bool {
	return len(kv) > len(key) && kv[:len(key)+1] == key+"="
}
