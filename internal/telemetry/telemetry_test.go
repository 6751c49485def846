package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	rec := NewRecorder()
	scoped := NewScopedAPI("carousel", rec)

	scoped.ReportBroken("extract.item", errors.New("boom"), 3)
	scoped.ReportWarning("extract.no-carousel")
	scoped.ReportInfo("extract.no-carousel", "no carousel found in the document")
	scoped.ReportCount("extract.emitted", 7)

	broken := rec.Find(REPORT_BROKEN, "extract.item")
	require.Len(t, broken, 1)
	require.Equal(t, "carousel: extract.item", broken[0].ID)
	require.Len(t, broken[0].Params, 2)
	require.Equal(t, 3, broken[0].Params[1])

	require.Len(t, rec.Find(REPORT_WARNING, "no-carousel"), 1)
	info := rec.Find(REPORT_INFO, "no-carousel")
	require.Len(t, info, 1)
	require.Equal(t, "carousel: extract.no-carousel", info[0].ID)
	require.Empty(t, rec.Find(REPORT_DEBUG, ""))

	n, ok := rec.Count("extract.emitted")
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	_, ok = rec.Count("extract.skipped")
	require.False(t, ok)
}

func TestSetupWithoutExporters(t *testing.T) {
	tel, err := Setup(context.Background(), "test:telemetry", Config{})
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestSlogAPILevels(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buff bytes.Buffer
	InitSlog(&buff, false)

	api := NewScopedAPI("carousel", SlogAPI{})
	api.ReportInfo("extract.no-carousel", "no carousel found in the document")
	api.ReportDebug("skipped candidate without name or link", 2)

	out := buff.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "carousel: extract.no-carousel")
	require.NotContains(t, out, "level=WARN")
	require.NotContains(t, out, "skipped candidate")
	require.Equal(t, 1, strings.Count(out, "\n"))
}
