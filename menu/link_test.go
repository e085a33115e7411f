package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_Render(t *testing.T) {
	out, err := NewLink("/about", "About").Render()
	require.NoError(t, err)
	assert.Equal(t, `<a href="/about">About</a>`, out)
}

func TestLink_RenderWithAttributes(t *testing.T) {
	l := NewLink("/", "Home").
		AddClass("brand").
		SetAttribute("rel", "home")

	out, err := l.Render()
	require.NoError(t, err)
	assert.Equal(t, `<a href="/" class="brand" rel="home">Home</a>`, out)
}

func TestLink_URLEscapedInAttribute(t *testing.T) {
	out, err := NewLink(`/q?a=1&b="x"`, "Q").Render()
	require.NoError(t, err)
	assert.Equal(t, `<a href="/q?a=1&amp;b=&#34;x&#34;">Q</a>`, out)
}

func TestLink_Prefix(t *testing.T) {
	l := NewLink("/about", "About").Prefix("/en")
	assert.Equal(t, "/en/about", l.URL())
}

func TestLink_ActiveFlag(t *testing.T) {
	l := NewLink("/", "Home")
	assert.False(t, l.IsActive())
	l.SetActive()
	assert.True(t, l.IsActive())
}

func TestHTML_RenderVerbatim(t *testing.T) {
	out, err := NewHTML(`<img src="/logo.png">`).Render()
	require.NoError(t, err)
	assert.Equal(t, `<img src="/logo.png">`, out, "raw fragments must not be escaped")
}

func TestText_RenderEscapes(t *testing.T) {
	out, err := NewText(`Tom & "Jerry" <3`).Render()
	require.NoError(t, err)
	assert.Equal(t, `Tom &amp; &#34;Jerry&#34; &lt;3`, out)
}
