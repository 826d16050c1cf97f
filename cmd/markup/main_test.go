package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/markup/internal/errors"
)

const form = `
tag: form
attrs:
  action: /signup
children:
  - tag: input
    name: email
    fromContext: true
  - tag: button
    children:
      - text: Go
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderStdout(t *testing.T) {
	file := writeFile(t, "form.yaml", form)

	out, err := run(t, "render", file, "--param", "email=a@b.c")
	require.NoError(t, err)

	want := "<form action=\"/signup\">\n" +
		"    <input name=\"email\" value=\"a@b.c\"/>\n" +
		"    <button>Go</button>\n" +
		"</form>\n"
	assert.Equal(t, want, out)
}

func TestRenderCompactToFile(t *testing.T) {
	file := writeFile(t, "form.yaml", form)
	output := filepath.Join(t.TempDir(), "form.html")

	out, err := run(t, "render", file, "--compact", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, `<form action="/signup"><input name="email"/><button>Go</button></form>`, string(data))
}

func TestRenderConfigIndent(t *testing.T) {
	file := writeFile(t, "form.yaml", form)
	cfg := writeFile(t, "markup.yaml", "render:\n  indent: \"\\t\"\n")

	out, err := run(t, "--config", cfg, "render", file)
	require.NoError(t, err)
	assert.Contains(t, out, "\n\t<button>Go</button>\n")
}

func TestRenderErrors(t *testing.T) {
	file := writeFile(t, "form.yaml", form)
	bad := writeFile(t, "bad.yaml", "tag: p\ntext: x\n")

	_, err := run(t, "render", file, "--param", "novalue")
	assert.Equal(t, "E050", errors.Code(err))

	_, err = run(t, "render", bad)
	assert.Equal(t, "E021", errors.Code(err))

	_, err = run(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err), "got %v", err)

	_, err = run(t, "render")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	out, err := run(t, "tags")
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Contains(t, names, "html")
	assert.Contains(t, names, "input")
	assert.Contains(t, names, "section")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}

func TestServeRejectsMissingDocs(t *testing.T) {
	_, err := run(t, "serve", "--docs", filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, "E030", errors.Code(err))
}

func TestPublishRequiresBucket(t *testing.T) {
	t.Setenv("MARKUP_BUCKET", "")
	file := writeFile(t, "form.yaml", form)

	_, err := run(t, "publish", file)
	assert.Equal(t, "E041", errors.Code(err))
}

func TestDefaultKey(t *testing.T) {
	assert.Equal(t, "page.html", defaultKey("dir/page.yaml", "text/html; charset=utf-8"))
	assert.Equal(t, "feed.xml", defaultKey("feed.json", "application/xml; charset=utf-8"))
}
