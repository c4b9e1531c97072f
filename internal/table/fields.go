package table

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"llmboard/pkg/types"
)

// Field names a sortable column. Values match the dataset JSON keys.
type Field string

const (
	FieldName                   Field = "name"
	FieldDeveloper              Field = "developer"
	FieldOperationalRank        Field = "operationalRank"
	FieldSafetyRank             Field = "safetyRank"
	FieldSize                   Field = "size"
	FieldReleased               Field = "released"
	FieldCodeLMArena            Field = "codeLMArena"
	FieldMMLU                   Field = "mmlu"
	FieldMathLiveBench          Field = "mathLiveBench"
	FieldCodeLiveBench          Field = "codeLiveBench"
	FieldInputCost              Field = "inputCost"
	FieldOutputCost             Field = "outputCost"
	FieldCutoffKnowledge        Field = "cutoffKnowledge"
	FieldContextLength          Field = "contextLength"
	FieldLicense                Field = "license"
	FieldSafeResponses          Field = "safeResponses"
	FieldUnsafeResponses        Field = "unsafeResponses"
	FieldJailbreakingResistance Field = "jailbreakingResistance"
	FieldOutputSpeed            Field = "outputSpeed"
	FieldLatency                Field = "latency"
)

// Kind selects how a column's values are compared.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindSize
)

// Polarity says what the "asc" direction means for a numeric column.
type Polarity int

const (
	// Literal: asc sorts values ascending.
	Literal Polarity = iota
	// HigherIsBetter: asc puts the best (largest) value first.
	HigherIsBetter
	// LowerIsBetter: asc puts the best (smallest) value first.
	LowerIsBetter
)

// Spec describes one sortable column.
type Spec struct {
	Kind     Kind
	Polarity Polarity
	text     func(types.Model) string
	number   func(types.Model) types.Value
}

var specs = map[Field]Spec{
	FieldName:                   text(func(m types.Model) string { return m.Name }),
	FieldDeveloper:              text(func(m types.Model) string { return m.Developer }),
	FieldReleased:               text(func(m types.Model) string { return m.Released }),
	FieldCutoffKnowledge:        text(func(m types.Model) string { return m.CutoffKnowledge }),
	FieldContextLength:          text(func(m types.Model) string { return m.ContextLength }),
	FieldLicense:                text(func(m types.Model) string { return m.License }),
	FieldOperationalRank:        number(Literal, func(m types.Model) types.Value { return rankValue(m.OperationalRank) }),
	FieldSafetyRank:             number(Literal, func(m types.Model) types.Value { return rankValue(m.SafetyRank) }),
	FieldCodeLMArena:            number(Literal, func(m types.Model) types.Value { return m.CodeLMArena }),
	FieldMMLU:                   number(Literal, func(m types.Model) types.Value { return m.MMLU }),
	FieldMathLiveBench:          number(Literal, func(m types.Model) types.Value { return m.MathLiveBench }),
	FieldCodeLiveBench:          number(Literal, func(m types.Model) types.Value { return m.CodeLiveBench }),
	FieldInputCost:              number(Literal, func(m types.Model) types.Value { return m.InputCost }),
	FieldOutputCost:             number(Literal, func(m types.Model) types.Value { return m.OutputCost }),
	FieldOutputSpeed:            number(Literal, func(m types.Model) types.Value { return m.OutputSpeed }),
	FieldLatency:                number(Literal, func(m types.Model) types.Value { return m.Latency }),
	FieldSafeResponses:          number(HigherIsBetter, func(m types.Model) types.Value { return m.SafeResponses }),
	FieldJailbreakingResistance: number(HigherIsBetter, func(m types.Model) types.Value { return m.JailbreakingResistance }),
	FieldUnsafeResponses:        number(LowerIsBetter, func(m types.Model) types.Value { return m.UnsafeResponses }),
	FieldSize:                   {Kind: KindSize, Polarity: HigherIsBetter, number: func(m types.Model) types.Value { return sizeValue(m.Size) }},
}

func text(get func(types.Model) string) Spec { return Spec{Kind: KindText, text: get} }

func number(p Polarity, get func(types.Model) types.Value) Spec {
	return Spec{Kind: KindNumber, Polarity: p, number: get}
}

// Lookup returns the column description for f.
func Lookup(f Field) (Spec, bool) {
	s, ok := specs[f]
	return s, ok
}

// Fields lists every sortable column in name order.
func Fields() []Field {
	out := make([]Field, 0, len(specs))
	for f := range specs {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseField accepts a column name exactly as it appears in the dataset.
func ParseField(s string) (Field, bool) {
	f := Field(s)
	_, ok := specs[f]
	return f, ok
}

func rankValue(r *int) types.Value {
	if r == nil {
		return types.Unknown()
	}
	return types.Known(float64(*r))
}

// UnknownSize is what ParseSize returns for text it cannot read.
const UnknownSize = -1

var sizePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*([BT])`)

// ParseSize converts a parameter count such as "7B Parameters" or
// "1.5T Parameters" to billions of parameters. Empty, "-" and unmatched
// text yield UnknownSize.
func ParseSize(s string) float64 {
	if s == "" || s == "-" {
		return UnknownSize
	}
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return UnknownSize
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return UnknownSize
	}
	if strings.EqualFold(m[2], "T") {
		v *= 1000
	}
	return v
}

func sizeValue(s string) types.Value {
	v := ParseSize(s)
	if v == UnknownSize {
		return types.Unknown()
	}
	return types.Known(v)
}
