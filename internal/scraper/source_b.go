package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"albumfeed/pkg/models"
	"albumfeed/pkg/utils"
)

// SourceB reads Metacritic's music listing and keeps only albums whose
// metascore is at or above Rules.Threshold.
type SourceB struct {
	Fetcher *Fetcher
	Rules   utils.MetacriticConfig
}

// NewSourceB creates a new SourceB.
func NewSourceB(f *Fetcher, rules utils.MetacriticConfig) *SourceB {
	return &SourceB{Fetcher: f, Rules: rules}
}

func (s *SourceB) Name() string {
	return models.SourceB.String()
}

// FetchAll fetches the listing page and maps it into raw reviews.
//
// Each item links to "/music/<album-slug>/<artist-slug>/critic-reviews";
// title and artist come from those two slugs.
func (s *SourceB) FetchAll(ctx context.Context) (Extraction, error) {
	body, err := s.Fetcher.Get(ctx, s.Rules.URL)
	if err != nil {
		return Extraction{}, fmt.Errorf("metacritic: %w", err)
	}
	return s.Parse(bytes.NewReader(body))
}

// Parse extracts qualifying reviews from a listing page.
func (s *SourceB) Parse(r io.Reader) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Extraction{}, fmt.Errorf("metacritic: parse html: %w", err)
	}

	var ex Extraction
	doc.Find(s.Rules.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		scoreDiv := item.Find(s.Rules.ScoreSelector).First()
		if scoreDiv.Length() == 0 {
			// not a review card
			return
		}
		score, err := strconv.Atoi(strings.TrimSpace(scoreDiv.Text()))
		if err != nil || score < 0 || score > 100 {
			ex.Skipped++
			return
		}
		if score < s.Rules.Threshold {
			return
		}

		href, ok := item.Find("a[href]").First().Attr("href")
		if !ok {
			ex.Skipped++
			return
		}
		title, artist, ok := splitMusicPath(href)
		if !ok {
			ex.Skipped++
			return
		}

		ex.Reviews = append(ex.Reviews, models.RawReview{
			Title:  title,
			Artist: artist,
			Rating: models.OutOfHundred(float64(score)),
			Source: models.SourceB,
			URL:    resolve(s.Rules.BaseURL, href),
		})
	})
	return ex, nil
}

// splitMusicPath maps "/music/<album>/<artist>/..." to title and artist.
// Absolute links are reduced to their path first.
func splitMusicPath(href string) (title, artist string, ok bool) {
	u, err := url.Parse(href)
	if err != nil {
		return "", "", false
	}
	parts := strings.Split(u.Path, "/")
	if len(parts) < 4 {
		return "", "", false
	}
	title = slugWords(parts[2])
	artist = slugWords(parts[3])
	if title == "" || artist == "" {
		return "", "", false
	}
	return title, artist, true
}
