package present

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"albumfeed/pkg/models"
)

// WriteTable renders reviews as a rounded table. Trusted rows are
// highlighted when color is true.
func WriteTable(w io.Writer, reviews []models.CanonicalReview, color bool) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Artist", "Rating", "Source", "Trusted", "Confirmed"})

	for i, r := range reviews {
		trusted := ""
		confirmed := ""
		if r.Trusted {
			trusted = "yes"
			if color {
				trusted = text.FgGreen.Sprint(trusted)
			}
		}
		if r.SecondaryRating != nil {
			confirmed = r.SecondaryRating.String()
		}
		tw.AppendRow(table.Row{i + 1, r.Title, r.Artist, PrimaryRating(r), r.Source.String(), trusted, confirmed})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d albums", len(reviews))})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
