package schemas

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/career-mentor/internal/types"
	schemafiles "github.com/jonathan/career-mentor/schemas"
)

// compiled caches parsed embedded schemas by file name
var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.RWMutex
)

// Load returns the compiled embedded schema with the given file name.
func Load(name string) (*gojsonschema.Schema, error) {
	compiledMu.RLock()
	if s, ok := compiled[name]; ok {
		compiledMu.RUnlock()
		return s, nil
	}
	compiledMu.RUnlock()

	data, err := schemafiles.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "embedded schema not found", Cause: err}
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "failed to compile schema", Cause: err}
	}

	compiledMu.Lock()
	compiled[name] = s
	compiledMu.Unlock()
	return s, nil
}

// ValidateBytes validates a JSON document against an embedded schema.
func ValidateBytes(name string, doc []byte) error {
	s, err := Load(name)
	if err != nil {
		return err
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	return resultError(result)
}

// ValidateValue encodes v as JSON and validates it against an embedded schema.
func ValidateValue(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return ValidateBytes(name, doc)
}

// ValidateRoadmap checks a roadmap against the CareerRoadmap schema.
func ValidateRoadmap(r *types.CareerRoadmap) error {
	return ValidateValue(schemafiles.CareerRoadmap, r)
}

// ValidateProfile checks a profile against the UserProfile schema.
func ValidateProfile(p *types.UserProfile) error {
	return ValidateValue(schemafiles.UserProfile, p)
}

// ValidateJobPosting checks a job posting against the JobPosting schema.
func ValidateJobPosting(j *types.JobPosting) error {
	return ValidateValue(schemafiles.JobPosting, j)
}
