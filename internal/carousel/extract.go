package carousel

import (
	"context"
	"fmt"
	"paintings/internal/assert"
	"paintings/internal/htmlutil"
	"paintings/internal/telemetry"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Extractor turns a parsed carousel page into paintings.
type Extractor struct {
	tel telemetry.API
}

func NewExtractor(tel telemetry.API) Extractor {
	assert.NotNil(tel)
	return Extractor{
		tel: telemetry.NewScopedAPI("carousel", tel),
	}
}

// Extract returns the paintings of the first carousel in doc in document order.
// A document without a carousel yields an empty slice and no error.
func (e Extractor) Extract(ctx context.Context, doc *goquery.Document) ([]Painting, error) {
	paintings, _, err := e.ExtractWithSummary(ctx, doc)
	return paintings, err
}

func (e Extractor) ExtractWithSummary(ctx context.Context, doc *goquery.Document) ([]Painting, Summary, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	items, found, err := findCandidates(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to select candidates")
		return nil, Summary{}, err
	}
	if !found {
		e.tel.ReportInfo(report_extract_no_carousel, "no carousel found in the document")
		return []Painting{}, Summary{}, nil
	}

	paintings, summary := e.collect(items, parseItem)

	e.tel.ReportCount(report_extract_candidates, int64(summary.Candidates))
	e.tel.ReportCount(report_extract_emitted, int64(summary.Emitted))
	e.tel.ReportCount(report_extract_incomplete, int64(summary.Incomplete))
	e.tel.ReportCount(report_extract_faulted, int64(summary.Faulted))
	recordOutcomes(ctx, summary)

	span.SetAttributes(
		attribute.Int("candidates", summary.Candidates),
		attribute.Int("emitted", summary.Emitted),
	)

	return paintings, summary, nil
}

// findCandidates locates the first carousel and selects its cards. Only a
// failure here aborts the extraction.
func findCandidates(doc *goquery.Document) (items *goquery.Selection, found bool, err error) {
	defer func() {
		r := recover()
		if r != nil {
			items = nil
			found = false
			err = &Error{Kind: ErrExtraction, Msg: "select candidates", Err: fmt.Errorf("%v", r)}
		}
	}()

	if doc == nil {
		return nil, false, &Error{Kind: ErrExtraction, Msg: "nil document"}
	}

	carousel := doc.Find(CarouselTag).First()
	if carousel.Length() == 0 {
		return nil, false, nil
	}
	return carousel.Find(ItemSelector), true, nil
}

type parseFunc func(item *goquery.Selection) (Painting, bool)

// collect runs parse over every item, a panicking item is reported and skipped
// without affecting its siblings.
func (e Extractor) collect(items *goquery.Selection, parse parseFunc) ([]Painting, Summary) {
	paintings := []Painting{}
	summary := Summary{Candidates: items.Length()}

	items.Each(func(i int, item *goquery.Selection) {
		painting, ok, err := safeParse(parse, item)
		if err != nil {
			e.tel.ReportBroken(report_extract_item, err, i)
			summary.Faulted++
			return
		}
		if !ok {
			e.tel.ReportDebug("skipped candidate without name or link", i)
			summary.Incomplete++
			return
		}
		paintings = append(paintings, painting)
	})

	summary.Emitted = len(paintings)
	return paintings, summary
}

func safeParse(parse parseFunc, item *goquery.Selection) (painting Painting, ok bool, err error) {
	defer func() {
		r := recover()
		if r != nil {
			painting = Painting{}
			ok = false
			err = fmt.Errorf("process item: %v", r)
		}
	}()
	painting, ok = parse(item)
	return painting, ok, nil
}

// parseItem reads a single card, ok is false when the card lacks a name or a link.
func parseItem(item *goquery.Selection) (Painting, bool) {
	name, _ := htmlutil.FirstText(item.Find(NameSelector))

	extensions := []string{}
	meta, hasMeta := htmlutil.FirstText(item.Find(MetaSelector))
	if hasMeta {
		extensions = strings.Split(meta, ExtensionSeparator)
	}

	link := ""
	href, hasHref := htmlutil.FirstAttr(item, "href")
	if hasHref {
		link = LinkOrigin + href
	}

	var thumbnail *string
	src, hasSrc := htmlutil.FirstAttr(item.Find(ThumbnailSelector), thumbnailAttrs...)
	if hasSrc {
		thumbnail = &src
	}

	if name == "" || link == "" {
		return Painting{}, false
	}
	return Painting{
		Name:       name,
		Extensions: extensions,
		Link:       link,
		Thumbnail:  thumbnail,
	}, true
}

func recordOutcomes(ctx context.Context, summary Summary) {
	counter, err := meter.Int64Counter(
		"carousel.candidates",
		metric.WithDescription("carousel cards processed, by outcome"),
	)
	if err != nil {
		return
	}
	counter.Add(ctx, int64(summary.Emitted), metric.WithAttributes(attribute.String("outcome", "emitted")))
	counter.Add(ctx, int64(summary.Incomplete), metric.WithAttributes(attribute.String("outcome", "incomplete")))
	counter.Add(ctx, int64(summary.Faulted), metric.WithAttributes(attribute.String("outcome", "faulted")))
}
