package cutoff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmboard/pkg/types"
)

func row(name, cutoff string) string {
	cols := make([]string, 12)
	cols[0] = name
	cols[11] = cutoff
	return strings.Join(cols, ",")
}

const header = "Model,a,b,c,d,e,f,g,h,i,j,Cutoff"

func TestParseSkipsShortAndBlankRows(t *testing.T) {
	csv := strings.Join([]string{
		header,
		row("GPT-4o", "Oct 2023"),
		"Short,row,only",
		row("", "Jan 2024"),
		row("Gemma 2", ""),
		row("GPT-4o", "Nov 2023"),
	}, "\n")
	src, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())
	v, ok := src.Lookup("GPT-4o")
	require.True(t, ok)
	assert.Equal(t, "Nov 2023", v)
	v, _ = src.Lookup("Gemma 2")
	assert.Equal(t, NotAvailable, v)
}

func TestApplyExactFuzzyAndUnmatched(t *testing.T) {
	csv := strings.Join([]string{
		header,
		row("Claude 3.7", "Oct 2024"),
		row("Llama 3.1 405B Instruct", "Dec 2023"),
		row("phi-4", "Jun 2024"),
		row("Claude 3.7 Sonnet", "Nov 2024"),
	}, "\n")
	src, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)

	models := []types.Model{
		{ID: "exact", Name: "Claude 3.7 Sonnet", CutoffKnowledge: Placeholder},
		{ID: "contained", Name: "Llama 3.1 405B", CutoffKnowledge: Placeholder},
		{ID: "case", Name: "Phi-4", CutoffKnowledge: Placeholder},
		{ID: "miss", Name: "Mystery", CutoffKnowledge: Placeholder},
		{ID: "kept", Name: "Claude 3.7 Sonnet", CutoffKnowledge: "Aug 2024"},
	}
	rep := Apply(models, src)

	assert.Equal(t, "Nov 2024", models[0].CutoffKnowledge)
	assert.Equal(t, "Dec 2023", models[1].CutoffKnowledge)
	assert.Equal(t, "Jun 2024", models[2].CutoffKnowledge)
	assert.Equal(t, NotAvailable, models[3].CutoffKnowledge)
	assert.Equal(t, "Aug 2024", models[4].CutoffKnowledge)

	assert.Len(t, rep.Exact, 1)
	assert.Len(t, rep.Fuzzy, 2)
	assert.Equal(t, "Llama 3.1 405B Instruct", rep.Fuzzy[0].Source)
	assert.Len(t, rep.Unmatched, 1)
	assert.Equal(t, 4, rep.Updated())
}

func TestFuzzyUsesFileOrder(t *testing.T) {
	csv := strings.Join([]string{
		header,
		row("GPT", "first"),
		row("GPT-4", "second"),
	}, "\n")
	src, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	models := []types.Model{{ID: "g", Name: "GPT-4 Turbo", CutoffKnowledge: Placeholder}}
	Apply(models, src)
	assert.Equal(t, "first", models[0].CutoffKnowledge)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Data-models.csv")
	require.NoError(t, os.WriteFile(p, []byte(header+"\n"+row("X", "May 2024")+"\n"), 0o644))
	src, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
