package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the chapter schema, compiled once and cached.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to normalize the definition.
		raw, err := json.Marshal(chapterSchema)
		if err != nil {
			compileErr = err
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("chapter.schema.json", doc); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile("chapter.schema.json")
	})
	return compiledSchema, compileErr
}

// Parse validates raw chapter JSON against the schema and decodes it.
// Duplicate lemmas within one file are rejected: they belong merged in the
// source content, not split across catalog rows.
func Parse(raw []byte) (*Chapter, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile chapter schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("chapter file rejected: %w", err)
	}

	var ch Chapter
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, fmt.Errorf("decode chapter: %w", err)
	}

	seen := make(map[string]bool, len(ch.Words))
	for _, w := range ch.Words {
		if seen[w.Lemma] {
			return nil, fmt.Errorf("duplicate lemma %q in chapter %s", w.Lemma, ch.ID)
		}
		seen[w.Lemma] = true
	}
	return &ch, nil
}

// ParseFile reads and parses a chapter file from disk.
func ParseFile(path string) (*Chapter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chapter file: %w", err)
	}
	return Parse(raw)
}
