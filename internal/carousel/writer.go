package carousel

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// EncodeJSON writes paintings as an indented JSON array, non-ASCII text and
// HTML characters are written literally.
func EncodeJSON(w io.Writer, paintings []Painting) error {
	out := make([]Painting, len(paintings))
	for i, p := range paintings {
		if p.Extensions == nil {
			p.Extensions = []string{}
		}
		out[i] = p
	}

	var buff bytes.Buffer
	enc := json.NewEncoder(&buff)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	if err != nil {
		return err
	}
	_, err = w.Write(unescapeLineSeparators(buff.Bytes()))
	return err
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json always
// emits back into the literal characters. Escapes are walked in pairs so an
// escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(encoded []byte) []byte {
	if !bytes.Contains(encoded, []byte(`\u202`)) {
		return encoded
	}

	out := make([]byte, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '\\' || i+1 >= len(encoded) {
			out = append(out, c)
			continue
		}
		escape := encoded[i : i+2]
		if encoded[i+1] == 'u' && i+6 <= len(encoded) {
			switch string(encoded[i : i+6]) {
			case `\u2028`:
				out = append(out, "\u2028"...)
				i += 5
				continue
			case `\u2029`:
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, escape...)
		i++
	}
	return out
}

// WriteJSON writes paintings to path, replacing any existing file. The output
// is written to a temporary file next to path and renamed into place, so a
// failed write never leaves a partial file behind.
func WriteJSON(ctx context.Context, paintings []Painting, path string) (err error) {
	ctx, span := tracer.Start(ctx, "WriteJSON")
	defer span.End()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.Int("paintings", len(paintings)),
	)
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "create " + path, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buffered := bufio.NewWriter(tmp)
	err = EncodeJSON(buffered, paintings)
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "encode json", Err: err}
	}
	err = buffered.Flush()
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "write " + path, Err: err}
	}
	err = tmp.Chmod(0644)
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "write " + path, Err: err}
	}
	err = tmp.Sync()
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "write " + path, Err: err}
	}
	err = tmp.Close()
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "write " + path, Err: err}
	}
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return &Error{Kind: ErrIO, Msg: "write " + path, Err: err}
	}
	committed = true

	slog.InfoContext(ctx, "extracted data saved", "path", path, "paintings", len(paintings))
	return nil
}
