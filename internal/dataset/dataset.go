// Package dataset loads, validates and writes the leaderboard dataset file.
// The file is a JSON array of model records; see schema.json for its shape.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"llmboard/data"
	"llmboard/internal/common/fsutil"
	"llmboard/pkg/types"
)

// EmbeddedSource is reported as the source of the bundled dataset.
const EmbeddedSource = "embedded"

//go:embed schema.json
var schemaJSON []byte

var schema = mustCompileSchema(schemaJSON, "dataset.schema.json")

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// Load reads and parses the dataset at path. A leading '~' is expanded.
func Load(path string) ([]types.Model, error) {
	b, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	models, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return models, nil
}

// Embedded returns the dataset bundled into the binary.
func Embedded() ([]types.Model, error) { return Parse(data.ModelsJSON) }

// Parse validates b against the dataset schema and decodes it.
// Malformed measurements are not errors; they decode as unknown values.
func Parse(b []byte) ([]types.Model, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	models := make([]types.Model, len(records))
	for i, raw := range records {
		if err := json.Unmarshal(raw, &models[i]); err != nil {
			return nil, fmt.Errorf("decode dataset record %d: %w", i, err)
		}
		models[i].Source = raw
	}
	if err := checkUniqueIDs(models); err != nil {
		return nil, err
	}
	return models, nil
}

// Validate checks the structure of a raw dataset document.
func Validate(b []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("decode dataset: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("dataset schema: %w", err)
	}
	return nil
}

func checkUniqueIDs(models []types.Model) error {
	seen := make(map[string]int, len(models))
	for i, m := range models {
		if j, ok := seen[m.ID]; ok {
			return fmt.Errorf("duplicate id %q at records %d and %d", m.ID, j, i)
		}
		seen[m.ID] = i
	}
	return nil
}

// Encode renders models the way the maintenance scripts always have:
// a 2-space indented JSON array with no HTML escaping. Records that came
// from Parse keep their key order, unknown keys and the original token of
// every field that was not changed; see mergeRecord.
func Encode(models []types.Model) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, m := range models {
		if i > 0 {
			compact.WriteByte(',')
		}
		rec, err := encodeRecord(m)
		if err != nil {
			return nil, fmt.Errorf("encode dataset record %d: %w", i, err)
		}
		compact.Write(rec)
	}
	compact.WriteByte(']')

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save atomically replaces the dataset at path.
func Save(path string, models []types.Model) error {
	b, err := Encode(models)
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(path, b); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// Find returns the record with the given id. A miss is reported through the
// boolean, never as an error.
func Find(models []types.Model, id string) (types.Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return types.Model{}, false
}

// Clone returns a copy of models whose rank pointers are not shared with
// the input.
func Clone(models []types.Model) []types.Model {
	out := make([]types.Model, len(models))
	copy(out, models)
	for i := range out {
		out[i].OperationalRank = cloneInt(out[i].OperationalRank)
		out[i].SafetyRank = cloneInt(out[i].SafetyRank)
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
