package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmboard/pkg/types"
)

func TestCanonicalURL(t *testing.T) {
	cases := []struct{ base, path, want string }{
		{"https://example.com", "/", "https://example.com/"},
		{"https://example.com/", "", "https://example.com/"},
		{"https://example.com", "red-teaming", "https://example.com/red-teaming"},
		{"https://example.com", "/model/x/", "https://example.com/model/x"},
		{"https://example.com/", "/model/x", "https://example.com/model/x"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CanonicalURL(c.base, c.path), "%s + %s", c.base, c.path)
	}
}

func TestGenerate(t *testing.T) {
	models := []types.Model{{ID: "a"}, {ID: ""}, {ID: "b"}}
	now := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	b, err := Generate("https://llm.example.com", models, now)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), xml.Header))

	var got urlset
	require.NoError(t, xml.Unmarshal(b, &got))
	assert.Contains(t, string(b), `<urlset xmlns="`+""+Namespace+`">`)
	require.Len(t, got.URLs, len(StaticPages)+2)

	assert.Equal(t, "https://llm.example.com/", got.URLs[0].Loc)
	assert.Equal(t, "1.0", got.URLs[0].Priority)
	assert.Equal(t, "https://llm.example.com/model/a", got.URLs[3].Loc)
	assert.Equal(t, "https://llm.example.com/model/b", got.URLs[4].Loc)
	for _, u := range got.URLs {
		assert.Equal(t, "2025-03-01", u.LastMod)
		assert.Equal(t, "weekly", u.ChangeFreq)
	}
	assert.Equal(t, "0.8", got.URLs[4].Priority)
}

func TestRobots(t *testing.T) {
	b, err := Robots("https://llm.example.com/")
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "Disallow: /api/")
	assert.Contains(t, s, "Sitemap: https://llm.example.com/sitemap.xml")
}

func TestVerifyRobotsRejectsClosedSite(t *testing.T) {
	err := verifyRobots([]byte("User-agent: *\nDisallow: /\n"), "https://x/sitemap.xml")
	assert.Error(t, err)
	err = verifyRobots([]byte("User-agent: *\nAllow: /\nDisallow: /api/\n"), "https://x/sitemap.xml")
	assert.Error(t, err)
}
