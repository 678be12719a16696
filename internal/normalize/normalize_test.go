package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/readmepin/internal/util/sets"
)

const base = "https://raw.githubusercontent.com/owner/repo/sha/"

func TestImageURLs_Markdown(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "relative path rewritten",
			content:  "![alt](docs/img.png)",
			expected: "![alt](" + base + "docs/img.png)",
		},
		{
			name:     "leading dot-slash stripped, uppercase extension",
			content:  "![x](./assets/Logo.JPG)",
			expected: "![x](" + base + "assets/Logo.JPG)",
		},
		{
			name:     "http URL untouched",
			content:  "![y](http://example.com/p.png)",
			expected: "![y](http://example.com/p.png)",
		},
		{
			name:     "https URL untouched",
			content:  "![z](https://example.com/p.png)",
			expected: "![z](https://example.com/p.png)",
		},
		{
			name:     "non-image extension untouched",
			content:  "![notimg](docs/file.txt)",
			expected: "![notimg](docs/file.txt)",
		},
		{
			name:     "empty alt text",
			content:  "![](pics/a.gif)",
			expected: "![](" + base + "pics/a.gif)",
		},
		{
			name:     "leading slash stripped",
			content:  "![a](/images/b.svg)",
			expected: "![a](" + base + "images/b.svg)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageURLs(tt.content, base, DefaultExtensions()))
		})
	}
}

func TestImageURLs_HTMLImgDoubleQuotes(t *testing.T) {
	content := `<p><img src="img/logo.svg" alt="logo"></p>`
	expected := `<p><img src="` + base + `img/logo.svg" alt="logo"></p>`
	assert.Equal(t, expected, ImageURLs(content, base, DefaultExtensions()))
}

func TestImageURLs_HTMLPreservesOtherAttributes(t *testing.T) {
	content := `<img width="200" src="./docs/arch.png" align="right">`
	expected := `<img width="200" src="` + base + `docs/arch.png" align="right">`
	assert.Equal(t, expected, ImageURLs(content, base, DefaultExtensions()))
}

func TestImageURLs_HTMLCaseInsensitiveTag(t *testing.T) {
	content := `<IMG SRC="img/a.png">`
	expected := `<IMG SRC="` + base + `img/a.png">`
	assert.Equal(t, expected, ImageURLs(content, base, DefaultExtensions()))
}

func TestImageURLs_HTMLAbsoluteUntouched(t *testing.T) {
	content := `<img src="https://example.com/logo.png" alt="x">`
	assert.Equal(t, content, ImageURLs(content, base, DefaultExtensions()))
}

func TestImageURLs_Idempotent(t *testing.T) {
	content := "![alt](pics/a.jpg)\n<img src=\"img/b.png\" alt=\"b\">\n"
	once := ImageURLs(content, base, DefaultExtensions())
	twice := ImageURLs(once, base, DefaultExtensions())
	require.Equal(t, once, twice)
}

func TestImageURLs_MixedDocument(t *testing.T) {
	content := "# Title\n\n" +
		"![Diagram](./docs/diagram.png)\n\n" +
		"Some [link](docs/guide.md) text.\n\n" +
		"<img src=\"assets/shot.jpeg\" alt=\"screenshot\">\n"
	expected := "# Title\n\n" +
		"![Diagram](" + base + "docs/diagram.png)\n\n" +
		"Some [link](docs/guide.md) text.\n\n" +
		"<img src=\"" + base + "assets/shot.jpeg\" alt=\"screenshot\">\n"
	assert.Equal(t, expected, ImageURLs(content, base, DefaultExtensions()))
}

func TestImageURLs_MalformedMarkupUntouched(t *testing.T) {
	for _, content := range []string{
		"![unclosed](docs/a.png",
		"!(no-brackets)(docs/a.png)",
		"<img src='single-quotes.png'>",
	} {
		assert.Equal(t, content, ImageURLs(content, base, DefaultExtensions()))
	}
}

func TestImageURLs_CustomExtensionSet(t *testing.T) {
	allowed := sets.New(".webp")
	assert.Equal(t, "![a]("+base+"x.webp)", ImageURLs("![a](x.webp)", base, allowed))
	assert.Equal(t, "![a](x.png)", ImageURLs("![a](x.png)", base, allowed))
}

func TestImageURLs_TotalOverArbitraryText(t *testing.T) {
	for _, content := range []string{"", "no images here", "]][[!()<img", "\x00\xff"} {
		assert.NotPanics(t, func() { ImageURLs(content, base, DefaultExtensions()) })
	}
}
