package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPreviewCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [--input <page.html>]",
		Short: "Prints the paintings of a page as a table without writing any output file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paintings, err := extract(cmd.Context(), s.config.Input)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetStyle(table.StyleRounded)
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Name", "Extensions", "Link", "Thumbnail"})
			for i, p := range paintings {
				thumbnail := "-"
				if p.Thumbnail != nil {
					thumbnail = *p.Thumbnail
				}
				t.AppendRow(table.Row{
					i + 1,
					p.Name,
					strings.Join(p.Extensions, ", "),
					p.Link,
					thumbnail,
				})
			}
			t.SetCaption("%d paintings", len(paintings))
			t.Render()

			return nil
		},
	}
}
