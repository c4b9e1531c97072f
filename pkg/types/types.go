package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a benchmark or telemetry figure that is either known or unknown.
// The dataset stores these as numbers, numeric strings, percentage strings,
// the "-" sentinel, or null; all of them are folded into Value when a record
// is decoded. The original JSON token is kept so that re-encoding a record
// reproduces the input byte for byte.
type Value struct {
	n     float64
	known bool
	raw   json.RawMessage
}

// Known returns a known value.
func Known(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{n: f, known: true}
}

// Unknown returns a value meaning "not measured".
func Unknown() Value { return Value{} }

// IsKnown reports whether the value carries a number.
func (v Value) IsKnown() bool { return v.known }

// Float returns the number and whether it is known.
func (v Value) Float() (float64, bool) { return v.n, v.known }

// Or returns the number, or def when unknown.
func (v Value) Or(def float64) float64 {
	if !v.known {
		return def
	}
	return v.n
}

// String renders the value the way the site displays it; unknown is "-".
func (v Value) String() string {
	if !v.known {
		return "-"
	}
	return strconv.FormatFloat(v.n, 'f', -1, 64)
}

// ParseValue converts a raw dataset string into a Value. Empty strings, the
// "-" sentinel and anything that does not parse as a finite number are
// unknown. A trailing "%" is ignored.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Value{}
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}
	}
	return Known(f)
}

// UnmarshalJSON never fails: tokens that are not numbers or numeric strings
// decode as unknown.
func (v *Value) UnmarshalJSON(b []byte) error {
	*v = Value{raw: append(json.RawMessage(nil), b...)}
	t := bytes.TrimSpace(b)
	if len(t) == 0 {
		return nil
	}
	switch t[0] {
	case '"':
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return nil
		}
		parsed := ParseValue(s)
		v.n, v.known = parsed.n, parsed.known
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return nil
		}
		parsed := Known(f)
		v.n, v.known = parsed.n, parsed.known
	}
	return nil
}

// MarshalJSON re-emits the decoded token when there is one, otherwise a JSON
// number or null.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) > 0 {
		return v.raw, nil
	}
	if !v.known {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.n, 'f', -1, 64), nil
}
