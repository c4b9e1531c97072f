package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"llmboard/pkg/types"
)

type record = orderedmap.OrderedMap[string, json.RawMessage]

func encodeRecord(m types.Model) ([]byte, error) {
	if len(m.Source) == 0 {
		return marshal(m)
	}
	return mergeRecord(m)
}

// mergeRecord lays the current field values of m over its Source record.
// A field is rewritten only when its value differs from what Source decodes
// to; keys the struct does not model are copied through in place, and
// changed fields absent from Source are appended in struct order.
func mergeRecord(m types.Model) ([]byte, error) {
	orig := orderedmap.New[string, json.RawMessage]()
	if err := orig.UnmarshalJSON(m.Source); err != nil {
		return nil, fmt.Errorf("source record: %w", err)
	}
	var before types.Model
	if err := json.Unmarshal(m.Source, &before); err != nil {
		return nil, fmt.Errorf("source record: %w", err)
	}
	base, err := fieldTokens(before)
	if err != nil {
		return nil, err
	}
	cur, err := fieldTokens(m)
	if err != nil {
		return nil, err
	}

	out := orderedmap.New[string, json.RawMessage]()
	for p := orig.Oldest(); p != nil; p = p.Next() {
		cv, inCur := cur.Get(p.Key)
		bv, inBase := base.Get(p.Key)
		switch {
		case !inCur && !inBase:
			out.Set(p.Key, p.Value)
		case !inCur:
			// cleared omitempty field
		case inBase && bytes.Equal(cv, bv):
			out.Set(p.Key, p.Value)
		default:
			out.Set(p.Key, cv)
		}
	}
	for p := cur.Oldest(); p != nil; p = p.Next() {
		if _, ok := orig.Get(p.Key); ok {
			continue
		}
		if bv, ok := base.Get(p.Key); ok && bytes.Equal(p.Value, bv) {
			continue
		}
		out.Set(p.Key, p.Value)
	}
	return writeRecord(out)
}

// fieldTokens renders m and splits it into its top-level members.
func fieldTokens(m types.Model) (*record, error) {
	b, err := marshal(m)
	if err != nil {
		return nil, err
	}
	rec := orderedmap.New[string, json.RawMessage]()
	if err := rec.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return rec, nil
}

// writeRecord renders rec compactly. The ordered map's own MarshalJSON
// escapes HTML in values, which would change tokens that were never edited.
func writeRecord(rec *record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for p := rec.Oldest(); p != nil; p = p.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := json.Compact(&buf, p.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
