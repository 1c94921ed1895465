package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled definitions by Schema.Name. Names must be
// unique per definition.
var compiledSchemas = struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}{byName: map[string]*jsonschema.Schema{}}

func compileSchema(s *Schema) (*jsonschema.Schema, error) {
	compiledSchemas.Lock()
	defer compiledSchemas.Unlock()

	if c, ok := compiledSchemas.byName[s.Name]; ok {
		return c, nil
	}

	// Round-trip through JSON so the compiler sees plain decoded values
	// instead of typed Go slices like []string.
	raw, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %s: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", s.Name, err)
	}

	url := "mem://legacyready/" + s.Name + ".json"
	comp := jsonschema.NewCompiler()
	if err := comp.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", s.Name, err)
	}
	c, err := comp.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", s.Name, err)
	}
	compiledSchemas.byName[s.Name] = c
	return c, nil
}

// validateResponse checks that raw is JSON satisfying s.
func validateResponse(s *Schema, raw json.RawMessage) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("output is not JSON: %w", err)
	}
	c, err := compileSchema(s)
	if err != nil {
		return err
	}
	return c.Validate(inst)
}
