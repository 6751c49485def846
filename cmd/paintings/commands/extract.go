package commands

import (
	"context"
	"log/slog"
	"paintings/internal/carousel"
	"paintings/internal/telemetry"

	"github.com/spf13/cobra"
)

func extract(ctx context.Context, input string) ([]carousel.Painting, error) {
	doc, err := carousel.Load(ctx, input)
	if err != nil {
		return nil, err
	}

	extractor := carousel.NewExtractor(telemetry.SlogAPI{})
	paintings, summary, err := extractor.ExtractWithSummary(ctx, doc)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(
		ctx, "extracted paintings",
		"input", input,
		"candidates", summary.Candidates,
		"emitted", summary.Emitted,
		"incomplete", summary.Incomplete,
		"faulted", summary.Faulted,
	)
	return paintings, nil
}

func (s *state) runExtract(cmd *cobra.Command, _ []string) error {
	paintings, err := extract(cmd.Context(), s.config.Input)
	if err != nil {
		return err
	}
	return carousel.WriteJSON(cmd.Context(), paintings, s.config.Output)
}
