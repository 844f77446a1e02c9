// Package prompts holds the user-facing text the assistant falls back to when
// the model cannot answer. Messages are stored as JSON files keyed by name and
// embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ChatFile holds the chat assistant's fallback replies.
const ChatFile = "chat.json"

// Keys in ChatFile.
const (
	KeyMissingAPIKey         = "missing-api-key"
	KeyEmptyResponse         = "empty-response"
	KeyTechnicalDifficulties = "technical-difficulties"
)

//go:embed *.json
var messageFiles embed.FS

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a message by filename and key.
func Get(filename, key string) (string, error) {
	messages, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	msg, exists := messages[key]
	if !exists {
		return "", fmt.Errorf("message key %q not found in %s", key, filename)
	}

	return msg, nil
}

// MustGet retrieves a message by filename and key, panicking if not found.
// Only use it for keys declared as constants in this package.
func MustGet(filename, key string) string {
	msg, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load message: %v", err))
	}
	return msg
}

// Format replaces placeholders of the form {{.Key}} with values from data.
// Unknown placeholders are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if messages, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return messages, nil
	}
	cacheMu.RUnlock()

	data, err := messageFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read message file %s: %w", filename, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse message file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = messages
	cacheMu.Unlock()

	return messages, nil
}

// ClearCache clears the message cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

// List returns the sorted message keys in a file.
func List(filename string) ([]string, error) {
	messages, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
