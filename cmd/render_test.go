package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/menukit/internal/config"
)

// withRenderState swaps the package-level render flags and config for a test.
func withRenderState(t *testing.T, file, out string, c config.Config) {
	t.Helper()
	prevFile, prevOut, prevCfg := renderFile, renderOut, cfg
	t.Cleanup(func() { renderFile, renderOut, cfg = prevFile, prevOut, prevCfg })
	renderFile, renderOut, cfg = file, out, c
}

func TestRenderOnce_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(def, []byte(`
menu:
  class: nav
  items:
    - link: { url: /, text: Home }
`), 0o644))
	out := filepath.Join(dir, "nav.html")

	withRenderState(t, def, out, config.Defaults())
	require.NoError(t, renderOnce())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `<ul class="nav"><li><a href="/">Home</a></li></ul>`+"\n", string(data))
}

func TestRenderOnce_AppliesConfigPrefixAndActiveClass(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(def, []byte(`
menu:
  active_url: /en/about
  items:
    - link: { url: /about, text: About }
`), 0o644))
	out := filepath.Join(dir, "nav.html")

	c := config.Defaults()
	c.URLPrefix = "/en"
	c.ActiveClass = "current"
	withRenderState(t, def, out, c)
	require.NoError(t, renderOnce())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		`<ul><li class="current"><a href="/en/about">About</a></li></ul>`+"\n",
		string(data))
}

func TestRenderOnce_ConfigReachesNestedMenus(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(def, []byte(`
menu:
  active_url: /en/deep
  items:
    - link: { url: /top, text: Top }
    - menu:
        items:
          - link: { url: /deep, text: Deep }
`), 0o644))
	out := filepath.Join(dir, "nav.html")

	c := config.Defaults()
	c.URLPrefix = "/en"
	c.ActiveClass = "current"
	withRenderState(t, def, out, c)
	require.NoError(t, renderOnce())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		`<ul><li><a href="/en/top">Top</a></li>`+
			`<li class="current"><ul><li class="current"><a href="/en/deep">Deep</a></li></ul></li></ul>`+"\n",
		string(data),
		"url prefix and active class must reach links inside nested menus")
}

func TestRenderOnce_MissingDefinition(t *testing.T) {
	withRenderState(t, filepath.Join(t.TempDir(), "absent.yaml"), "", config.Defaults())
	require.Error(t, renderOnce())
}
