package carousel

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background(), filepath.Join("testdata", "van-gogh-paintings.html"))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Find(CarouselTag).Length())
}

func TestLoadFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent_file.html")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFileNotFound))
	require.False(t, errors.Is(err, ErrIO))
	require.Contains(t, err.Error(), "file not found")
	require.Contains(t, err.Error(), path)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIO))
	require.False(t, errors.Is(err, ErrFileNotFound))
}

func TestLoadInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.html")
	err := os.WriteFile(path, []byte("<html><body>caf\xe9</body></html>"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Load(context.Background(), path)
	require.True(t, errors.Is(err, ErrIO))
	require.Contains(t, err.Error(), "utf-8")
}

func TestParseMalformed(t *testing.T) {
	table := []string{
		"<invalid><html>",
		"<div><span>unclosed",
		"</p></div><a class='klitem' href=",
		"",
	}

	for _, markup := range table {
		doc, err := Parse(context.Background(), strings.NewReader(markup))
		require.NoError(t, err, markup)
		require.NotNil(t, doc, markup)
	}
}

func TestParseReaderFailure(t *testing.T) {
	_, err := Parse(context.Background(), iotest.ErrReader(errors.New("disk on fire")))
	require.True(t, errors.Is(err, ErrIO))
	require.Contains(t, err.Error(), "disk on fire")
}
