package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readme-generator/internal/domain"
)

func sampleFields() domain.Fields {
	return domain.EmptyFields().
		With(domain.FieldName, "Ada Lovelace").
		With(domain.FieldBio, "Analytical engine enthusiast").
		With(domain.FieldSkills, "Go, Rust").
		With(domain.FieldProjects, "https://example.com/p").
		With(domain.FieldContributions, "<b>lots</b>").
		With(domain.FieldUsername, "ada").
		With(domain.FieldBannerImage, "https://img/banner.png").
		With(domain.FieldGifURL, "https://img/coding.gif").
		With(domain.FieldDetails, "Details & more")
}

func TestRenderReadmeGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "readme.golden.md"))
	require.NoError(t, err)

	got, err := RenderReadme(sampleFields(), domain.Stats{
		RepoCount: 12,
		Languages: []string{"Go", "C++", "Jupyter Notebook"},
	})
	require.NoError(t, err)

	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("README mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReadmeRepoCountFallback(t *testing.T) {
	got, err := RenderReadme(sampleFields(), domain.Stats{})
	require.NoError(t, err)

	s := string(got)
	assert.Contains(t, s, "Total GitHub Stars: N/A\n")
	assert.NotContains(t, s, "Total GitHub Stars: 0")
	assert.Contains(t, s, "## Most Used Languages\n\n\n\n## Connect with Me")
}

func TestRenderReadmeProfileLinks(t *testing.T) {
	fields := domain.EmptyFields().With(domain.FieldUsername, "alice").With(domain.FieldBio, "anything at all")
	got, err := RenderReadme(fields, domain.Stats{})
	require.NoError(t, err)

	s := string(got)
	links := []string{
		"https://github-readme-stats.vercel.app/api?username=alice&",
		"[LinkedIn](https://www.linkedin.com/in/alice)",
		"[Twitter](https://twitter.com/alice)",
	}
	for _, l := range links {
		assert.Equal(t, 1, strings.Count(s, l), l)
	}
	assert.Equal(t, 1, strings.Count(s, "[Personal Website](https://www.yourwebsite.com)"))
	assert.Equal(t, 4, strings.Count(s, "https://"))
}

func TestRenderReadmeIsRaw(t *testing.T) {
	fields := domain.EmptyFields().With(domain.FieldName, `<script>alert("x")</script>`)
	got, err := RenderReadme(fields, domain.Stats{})
	require.NoError(t, err)
	assert.Contains(t, string(got), `I'm <script>alert("x")</script> </h1>`)
}

func TestNewReadme(t *testing.T) {
	doc, err := NewReadme(sampleFields(), domain.Stats{})
	require.NoError(t, err)
	assert.Equal(t, "README.md", doc.Filename)
	assert.Equal(t, "text/markdown", doc.ContentType)
	assert.True(t, strings.HasSuffix(string(doc.Body), "Happy coding! 🚀"))
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"Go":               "Go",
		"C++":              "C%2B%2B",
		"C#":               "C%23",
		"Jupyter Notebook": "Jupyter%20Notebook",
		"Objective-C":      "Objective-C",
		"Vim script":       "Vim%20script",
		"F*":               "F*",
		"Ren'Py":           "Ren'Py",
		"a/b?c=d&e":        "a%2Fb%3Fc%3Dd%26e",
		"(~!)":             "(~!)",
	}
	for in, want := range tests {
		assert.Equal(t, want, encodeURIComponent(in), in)
	}
}
