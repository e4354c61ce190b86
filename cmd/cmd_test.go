package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "blog")
	assert.Contains(t, out, "Technology by Kyle W. Purdon")
}

func TestValidate_Embedded(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   blog")
	assert.Contains(t, out, "ok   github-pages")
	assert.Contains(t, out, "ok   technology")
}

func TestValidate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	site := "default_pagination: 0\nmenuitems:\n  - [Home, not-a-url]\n"
	require.NoError(t, os.WriteFile(path, []byte(site), 0644))

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL "+path)
	assert.Contains(t, out, "default_pagination must be positive")
	assert.Contains(t, out, `menuitems[0] "Home"`)
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", "--variant", "technology")
	require.NoError(t, err)
	assert.Contains(t, out, "SITENAME = 'Technology by Kyle W. Purdon'\n")

	out, err = run(t, "render", "--variant", "blog", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"DEFAULT_PAGINATION": 5`)

	out, err = run(t, "render", "--variant", "blog", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sitename: Kyle W. Purdon")

	_, err = run(t, "render", "--format", "toml")
	assert.ErrorContains(t, err, `unknown format "toml"`)

	_, err = run(t, "render", "--variant", "nope")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(contentDir, "extra"), os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "extra", "custom.css"), []byte("p {\n  color: blue;\n}\n"), 0644))

	out, err := run(t, "build", "--variant", "technology", "--out", outDir, "--content", contentDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Settings for technology generated")

	for _, name := range []string{"pelicanconf.py", "settings.json", "sitemap.xml", filepath.Join("static", "custom.css")} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestBuild_RejectsInvalidSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("siteurl: nowhere\n"), 0644))
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := run(t, "build", "--file", path, "--out", outDir)
	require.Error(t, err)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmd_SilencesErrors(t *testing.T) {
	out, stderr, err := runWithStderr(t, "render", "--variant", "nope")
	require.Error(t, err)
	assert.NotContains(t, stderr, "Error:")
	assert.NotContains(t, out, "Error:")
}

func TestBuildCatalog(t *testing.T) {
	dir := t.TempDir()
	extra := filepath.Join(dir, "extra-site.yaml")
	require.NoError(t, os.WriteFile(extra, []byte("author: someone\nsitename: Extra\n"), 0644))

	catalog, err := buildCatalog([]string{extra})
	require.NoError(t, err)
	assert.Contains(t, catalog, "blog")
	require.Contains(t, catalog, "extra-site")
	assert.Equal(t, "Extra", catalog["extra-site"].SiteName)
}

func TestBuildCatalog_RejectsShadowedVariant(t *testing.T) {
	shadow := filepath.Join(t.TempDir(), "blog.yaml")
	require.NoError(t, os.WriteFile(shadow, []byte("author: someone else\n"), 0644))

	_, err := buildCatalog([]string{shadow})
	assert.ErrorContains(t, err, `name "blog" is already served`)
}

func TestBuildCatalog_RejectsDuplicateFiles(t *testing.T) {
	first := filepath.Join(t.TempDir(), "mine.yaml")
	second := filepath.Join(t.TempDir(), "mine.yaml")
	for _, path := range []string{first, second} {
		require.NoError(t, os.WriteFile(path, []byte("author: someone\n"), 0644))
	}

	_, err := buildCatalog([]string{first, second})
	assert.ErrorContains(t, err, `name "mine" is already served`)
}
