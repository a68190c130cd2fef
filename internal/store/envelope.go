package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// DocumentVersion is the format version stamped on every written document.
// Documents with a different major version are rejected on read.
const DocumentVersion = "v1.0.0"

// envelope wraps every stored payload.
type envelope struct {
	Version string          `json:"version"`
	Kind    string          `json:"kind"`
	Data    json.RawMessage `json:"data"`
}

// schemaCache caches compiled kind schemas by kind name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func sealEnvelope(kind Kind, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(envelope{
		Version: DocumentVersion,
		Kind:    kind.Name,
		Data:    data,
	})
}

// openEnvelope checks version, kind and schema and returns the raw payload.
func openEnvelope(raw []byte, kind Kind) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse envelope: %w", err)
	}

	if !semver.IsValid(env.Version) || semver.Major(env.Version) != semver.Major(DocumentVersion) {
		return nil, fmt.Errorf("%w: %q (want %s)", ErrIncompatibleVersion, env.Version, semver.Major(DocumentVersion))
	}
	if kind.Name != "" && env.Kind != kind.Name {
		return nil, fmt.Errorf("%w: stored %q, requested %q", ErrKindMismatch, env.Kind, kind.Name)
	}

	if err := validatePayload(kind, env.Data); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// validatePayload validates data against the kind's schema, if any.
func validatePayload(kind Kind, data json.RawMessage) error {
	if kind.Schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}

	compiled, err := compiledSchema(kind)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", kind.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema(kind Kind) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(kind.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a generic JSON value, so round-trip the map.
	defBytes, err := json.Marshal(kind.Schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", kind.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(kind.Name, compiled)
	return compiled, nil
}
