package carousel

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Load reads the file at path and parses it into a document. The file is closed
// before parsing begins.
func Load(ctx context.Context, path string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = &Error{Kind: ErrFileNotFound, Msg: path}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err != nil {
		err = &Error{Kind: ErrIO, Msg: "read " + path, Err: err}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if !utf8.Valid(contents) {
		err = &Error{Kind: ErrIO, Msg: "read " + path, Err: errors.New("contents are not valid utf-8")}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return Parse(ctx, bytes.NewReader(contents))
}

// Parse parses HTML from r, malformed markup (unclosed tags, broken nesting) is
// repaired by the parser instead of failing.
func Parse(ctx context.Context, r io.Reader) (*goquery.Document, error) {
	_, span := tracer.Start(ctx, "Parse")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		err = &Error{Kind: ErrIO, Msg: "parse html", Err: err}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return doc, nil
}
