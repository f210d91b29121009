package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var embeddedSchemas embed.FS

const embeddedSchemaPattern = "schemas/%s.schema.json"

// SchemaValidator validates JSON data against JSON schemas.
// A schema reference is either the name of a built-in schema (e.g. "hives") or a file path.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaRef string) error
	ValidateBytes(data []byte, schemaRef string) error
	HasSchema(schemaRef string) bool
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaRef string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaRef)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaRef string) error {
	schema, err := v.loadSchema(schemaRef)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaRef, err)
	}

	var jsonData interface{}
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// HasSchema reports whether schemaRef names a built-in schema
func (v *validator) HasSchema(schemaRef string) bool {
	_, err := embeddedSchemas.ReadFile(fmt.Sprintf(embeddedSchemaPattern, schemaRef))
	return err == nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaRef string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[schemaRef]; ok {
		return schema, nil
	}

	schemaData, err := readSchema(schemaRef)
	if err != nil {
		return nil, err
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(schemaData, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	url := "mem://" + filepath.ToSlash(schemaRef)
	if err := v.compiler.AddResource(url, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaRef] = schema
	return schema, nil
}

// readSchema prefers a built-in schema and falls back to the filesystem
func readSchema(schemaRef string) ([]byte, error) {
	if data, err := embeddedSchemas.ReadFile(fmt.Sprintf(embeddedSchemaPattern, schemaRef)); err == nil {
		return data, nil
	}

	resolvedPath, err := resolveSchemaPath(schemaRef)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return data, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(msgs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if msg := formatError(err); msg != "" {
		*msgs = append(*msgs, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}

// resolveSchemaPath resolves a schema path, searching upward to the module root for relative paths
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	if _, err := os.Stat(schemaPath); err == nil {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		testPath := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(testPath); err == nil {
			return testPath, nil
		}

		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
}
