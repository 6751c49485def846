package carousel

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("paintings.internal.carousel")
var meter = otel.Meter("paintings.internal.carousel")

const (
	report_extract_item        = "extract.item"
	report_extract_no_carousel = "extract.no-carousel"
	report_extract_candidates  = "extract.candidates"
	report_extract_emitted     = "extract.emitted"
	report_extract_incomplete  = "extract.incomplete"
	report_extract_faulted     = "extract.faulted"
)
