package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"paintings/internal/carousel"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body><g-scrolling-carousel>
	<a class="klitem" href="/path/1">
		<div class="klic"><img class="rISBZc" data-src="thumb1.jpg" src="fallback.jpg"></div>
		<div class="kltat">Starry Night</div>
		<div class="klmeta">1889, Oil on canvas</div>
	</a>
	<a class="klitem"><div class="kltat">No link</div></a>
</g-scrolling-carousel></body></html>`

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func run(t testing.TB, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	output := filepath.Join(dir, "out.json")
	writeFile(t, input, page)

	_, err := run(t,
		"--config", filepath.Join(dir, "missing.json5"),
		"--input", input,
		"--output", output,
	)
	require.NoError(t, err)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(contents, &decoded))
	require.Equal(t, []map[string]any{{
		"name":       "Starry Night",
		"extensions": []any{"1889", "Oil on canvas"},
		"link":       "https://www.google.com/path/1",
		"thumbnail":  "thumb1.jpg",
	}}, decoded)
}

func TestExtractCommandFromConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	output := filepath.Join(dir, "from-config.json")
	configPath := filepath.Join(dir, "paintings.json5")
	writeFile(t, input, "<html></html>")

	cfg, err := json.Marshal(map[string]any{"input": input, "output": output})
	require.NoError(t, err)
	writeFile(t, configPath, string(cfg))

	_, err = run(t, "--config", configPath)
	require.NoError(t, err)

	contents, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(contents))
}

func TestExtractCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "nonexistent_file.html")
	output := filepath.Join(dir, "out.json")

	_, err := run(t,
		"--config", filepath.Join(dir, "missing.json5"),
		"-i", input,
		"-o", output,
	)
	require.True(t, errors.Is(err, carousel.ErrFileNotFound))
	require.Contains(t, err.Error(), input)

	_, statErr := os.Stat(output)
	require.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestExtractCommandRejectsArgs(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.json5"), "page.html")
	require.Error(t, err)
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "page.html")
	writeFile(t, input, page)

	out, err := run(t, "preview", "--config", filepath.Join(dir, "missing.json5"), "--input", input)
	require.NoError(t, err)
	require.Contains(t, out, "Starry Night")
	require.Contains(t, out, "1889, Oil on canvas")
	require.Contains(t, out, "1 paintings")
	require.NotContains(t, out, "No link")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--config", filepath.Join(t.TempDir(), "missing.json5"))
	require.NoError(t, err)
	require.Equal(t, "paintings dev\n", out)
}
