// Package present renders canonical reviews for the terminal.
package present

import (
	"fmt"
	"io"
	"strconv"

	"albumfeed/pkg/models"
)

// Line formats one review as "<title> by <artist> - <rating>/<scale> (<source>)".
// The scale follows the site that supplied the primary rating, whether or
// not the other site confirmed the album.
func Line(r models.CanonicalReview) string {
	return fmt.Sprintf("%s by %s - %s (%s)", r.Title, r.Artist, PrimaryRating(r), r.Source)
}

// PrimaryRating renders the primary rating on its source's scale, e.g. "8.4/10".
func PrimaryRating(r models.CanonicalReview) string {
	return strconv.FormatFloat(r.Rating.Value, 'f', -1, 64) + "/" + strconv.Itoa(int(r.Source.Scale()))
}

// WriteText prints a header followed by one Line per review.
func WriteText(w io.Writer, reviews []models.CanonicalReview) error {
	if _, err := fmt.Fprintf(w, "Found %d highly rated albums:\n", len(reviews)); err != nil {
		return err
	}
	for _, r := range reviews {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return err
		}
	}
	return nil
}
