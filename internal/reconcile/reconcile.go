// Package reconcile merges the review lists of both sites into one
// deduplicated collection.
package reconcile

import "albumfeed/pkg/models"

// Reconcile merges Source A and Source B records into canonical reviews.
//
// Records are keyed by models.KeyOf. The last A record for a key
// wins but keeps the position of the first one. A B record whose key is
// already present only marks that entity trusted and attaches its rating
// as the secondary rating; the existing title, artist, URL, source and
// primary rating are never replaced. Which list a record arrived in
// decides how it is handled; its Source field is not consulted.
//
// The result lists A entities in input order followed by unmatched B
// entities in input order. Reconcile performs no validation; records
// without a title or artist must be filtered by the caller.
func Reconcile(a, b []models.RawReview) []models.CanonicalReview {
	idx := make(map[models.Key]int, len(a)+len(b))
	out := make([]models.CanonicalReview, 0, len(a)+len(b))

	for _, r := range a {
		k := models.KeyOf(r)
		if i, ok := idx[k]; ok {
			out[i] = models.NewCanonical(r)
			continue
		}
		idx[k] = len(out)
		out = append(out, models.NewCanonical(r))
	}

	for _, r := range b {
		k := models.KeyOf(r)
		if i, ok := idx[k]; ok {
			rating := r.Rating
			out[i].Trusted = true
			out[i].SecondaryRating = &rating
			continue
		}
		idx[k] = len(out)
		out = append(out, models.NewCanonical(r))
	}

	return out
}
