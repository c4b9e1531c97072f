package types

import (
	"encoding/json"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in    string
		want  float64
		known bool
	}{
		{"85.3%", 85.3, true},
		{" 72 ", 72, true},
		{"1300", 1300, true},
		{"-", 0, false},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseValue(c.in).Float()
		if ok != c.known || got != c.want {
			t.Fatalf("ParseValue(%q) = (%v,%v), want (%v,%v)", c.in, got, ok, c.want, c.known)
		}
	}
}

func TestValueUnmarshalTokens(t *testing.T) {
	var rec struct {
		A Value `json:"a"`
		B Value `json:"b"`
		C Value `json:"c"`
		D Value `json:"d"`
		E Value `json:"e"`
		F Value `json:"f"`
		G Value `json:"g"`
	}
	in := `{"a":1300,"b":"64.2%","c":"-","d":null,"e":{"x":1},"f":"garbage","g":true}`
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := rec.A.Float(); !ok || v != 1300 {
		t.Fatalf("a=%v,%v", v, ok)
	}
	if v, ok := rec.B.Float(); !ok || v != 64.2 {
		t.Fatalf("b=%v,%v", v, ok)
	}
	for name, v := range map[string]Value{"c": rec.C, "d": rec.D, "e": rec.E, "f": rec.F, "g": rec.G} {
		if v.IsKnown() {
			t.Fatalf("%s should be unknown", name)
		}
	}
}

func TestValueRoundTripKeepsToken(t *testing.T) {
	in := `{"a":"64.2%","b":"-","c":null,"d":1.50}`
	var rec map[string]Value
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for k, want := range map[string]string{"a": `"64.2%"`, "b": `"-"`, "c": "null", "d": "1.50"} {
		b, err := json.Marshal(rec[k])
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		if string(b) != want {
			t.Fatalf("%s: got %s want %s", k, b, want)
		}
	}
}

func TestValueMarshalConstructed(t *testing.T) {
	b, _ := json.Marshal(Known(0.25))
	if string(b) != "0.25" {
		t.Fatalf("known: %s", b)
	}
	b, _ = json.Marshal(Unknown())
	if string(b) != "null" {
		t.Fatalf("unknown: %s", b)
	}
	var zero Value
	if zero.IsKnown() || zero.String() != "-" || zero.Or(-1) != -1 {
		t.Fatalf("zero value should be unknown")
	}
}

func TestHasSafetyData(t *testing.T) {
	if (Model{}).HasSafetyData() {
		t.Fatalf("empty model has no safety data")
	}
	if !(Model{UnsafeResponses: Known(0)}).HasSafetyData() {
		t.Fatalf("known zero counts as safety data")
	}
}
