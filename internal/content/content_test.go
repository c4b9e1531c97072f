package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPages(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"methodology", "red-teaming"}, lib.Slugs())

	p, err := lib.Page("methodology")
	require.NoError(t, err)
	assert.Equal(t, "Methodology", p.Title)
	assert.Contains(t, p.HTML, "<h1>Methodology</h1>")
	assert.Contains(t, p.HTML, "<table>")

	rt, err := lib.Page("red-teaming")
	require.NoError(t, err)
	assert.Equal(t, "About Red Teaming", rt.Title)
	assert.Contains(t, rt.HTML, "237 prompts")
}

func TestUnknownPage(t *testing.T) {
	lib, err := Default()
	require.NoError(t, err)
	_, err = lib.Page("pricing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "page not found: pricing", err.Error())
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md":      {Data: []byte("intro\n\n# Alpha\n\n*hi*\n")},
		"b.md":      {Data: []byte("no heading\n")},
		"notes.txt": {Data: []byte("# ignored")},
		"dir/c.md":  {Data: []byte("# nested")},
	}
	lib, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lib.Slugs())

	a, _ := lib.Page("a")
	assert.Equal(t, "Alpha", a.Title)
	assert.Contains(t, a.HTML, "<em>hi</em>")

	b, _ := lib.Page("b")
	assert.Equal(t, "b", b.Title)
}
