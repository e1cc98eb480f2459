package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ")
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.NotContains(t, result, "\n\n\n")
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestIngestFromFile_PlainText(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "resume.txt")
	err := os.WriteFile(testFile, []byte("SKILLS\n\nGo, Python"), 0644)
	require.NoError(t, err)

	text, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Contains(t, text, "SKILLS")
	require.NotNil(t, metadata)
	assert.Len(t, metadata.Hash, 64)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.Equal(t, len(text), metadata.Chars)
}

func TestIngestFromFile_HTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>Job</title><script>track();</script></head>
<body>
<nav>Home | Jobs</nav>
<main>
<h2>Requirements</h2>
<ul><li>Python</li><li>Kubernetes</li></ul>
</main>
<footer>Globex Inc</footer>
</body></html>`

	testFile := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(testFile, []byte(html), 0644))

	text, _, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "Python")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "track()", "scripts are noise")
	assert.NotContains(t, text, "Home | Jobs", "navigation is noise")
	assert.NotContains(t, text, "Globex Inc", "footer is noise")
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	text, metadata, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Empty(t, text)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_HashDeterministic(t *testing.T) {
	tmpDir := t.TempDir()
	fileA := filepath.Join(tmpDir, "a.txt")
	fileB := filepath.Join(tmpDir, "b.txt")
	require.NoError(t, os.WriteFile(fileA, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(fileB, []byte("Content 2"), 0644))

	_, meta1, err := IngestFromFile(fileA)
	require.NoError(t, err)
	_, meta1Again, err := IngestFromFile(fileA)
	require.NoError(t, err)
	_, meta2, err := IngestFromFile(fileB)
	require.NoError(t, err)

	assert.Equal(t, meta1.Hash, meta1Again.Hash)
	assert.NotEqual(t, meta1.Hash, meta2.Hash)
}

func TestExtractHTMLText_HeadingsOnOwnLines(t *testing.T) {
	html := `<body><div><h2>Skills</h2><p>Go and Python</p><h2>Experience</h2><p>Built services</p></div></body>`

	text, err := ExtractHTMLText(html)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	assert.Contains(t, lines, "Skills")
	assert.Contains(t, lines, "Experience")
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<!DOCTYPE html><html></html>"))
	assert.True(t, LooksLikeHTML("<html lang=\"en\">"))
	assert.True(t, LooksLikeHTML("stuff <div class=\"posting\">text</div>"))
	assert.False(t, LooksLikeHTML("SKILLS\nGo, Python"))
	assert.False(t, LooksLikeHTML("5 < 6 and 7 > 2"))
}
