package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"albumfeed/pkg/models"
	"albumfeed/pkg/utils"
)

// SourceA reads Pitchfork's album review listing and keeps only items
// carrying the "Best New" editorial marker.
type SourceA struct {
	Fetcher *Fetcher
	Rules   utils.PitchforkConfig
}

func NewSourceA(f *Fetcher, rules utils.PitchforkConfig) *SourceA {
	return &SourceA{Fetcher: f, Rules: rules}
}

func (s *SourceA) Name() string { return models.SourceA.String() }

func (s *SourceA) FetchAll(ctx context.Context) (Extraction, error) {
	body, err := s.Fetcher.Get(ctx, s.Rules.URL)
	if err != nil {
		return Extraction{}, fmt.Errorf("pitchfork: %w", err)
	}
	return s.Parse(bytes.NewReader(body))
}

var (
	errNotSelected = errors.New("not selected")
	errMalformed   = errors.New("malformed item")
)

// Parse extracts reviews from a listing page. Items without the marker are
// ignored; marked items that cannot be read are counted as skipped.
func (s *SourceA) Parse(r io.Reader) (Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Extraction{}, fmt.Errorf("pitchfork: parse html: %w", err)
	}

	var ex Extraction
	doc.Find(s.Rules.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		rv, err := s.parseItem(item)
		switch {
		case errors.Is(err, errNotSelected):
		case err != nil:
			ex.Skipped++
		default:
			ex.Reviews = append(ex.Reviews, rv)
		}
	})
	return ex, nil
}

func (s *SourceA) parseItem(item *goquery.Selection) (models.RawReview, error) {
	container := item.ParentsFiltered(s.Rules.ContainerSelector).First()
	if container.Length() == 0 {
		return models.RawReview{}, errNotSelected
	}
	text := container.Text()
	if !strings.Contains(text, s.Rules.Marker) {
		return models.RawReview{}, errNotSelected
	}

	href, ok := container.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return models.RawReview{}, errMalformed
	}

	heading := container.Find(s.Rules.HeadingSelector).First()
	if heading.Length() == 0 {
		return models.RawReview{}, errMalformed
	}
	headline := strings.TrimSpace(heading.Text())
	// A genre label is separated from the album name by a double space.
	if _, after, found := strings.Cut(headline, "  "); found {
		headline = after
	}

	// Without a numeric score there is no rating to merge or print, so a
	// marked card lacking one is skipped and counted.
	score, err := parseScore(container.Find(s.Rules.ScoreSelector).First().Text(), 10)
	if err != nil {
		return models.RawReview{}, errMalformed
	}

	designation := "Best New Reissue"
	if strings.Contains(text, "Best New Album") {
		designation = "Best New Album"
	}

	var title, artist string
	if a := strings.TrimSpace(container.Find(s.Rules.ArtistSelector).First().Text()); a != "" {
		title, artist = headline, a
	} else {
		title, artist = splitFromSlug(lastSegment(href), headline)
	}
	title = titleCase(strings.TrimSpace(title))
	artist = strings.TrimSpace(artist)
	if title == "" || artist == "" {
		return models.RawReview{}, errMalformed
	}

	return models.RawReview{
		Title:       title,
		Artist:      artist,
		Rating:      models.OutOfTen(score),
		Source:      models.SourceA,
		URL:         resolve(s.Rules.BaseURL, href),
		Designation: designation,
	}, nil
}

// splitFromSlug guesses title and artist from a review slug such as
// "bon-iver-sable-fable" when the page carries no artist element.
//
//   - "various-artists-..." is a compilation; the headline is the title.
//   - a short final part is taken as an acronym artist ("...-mgmt").
//   - otherwise the first two parts name the artist, and are stripped from
//     the headline if it repeats them.
func splitFromSlug(slug, headline string) (title, artist string) {
	if strings.HasPrefix(slug, "various-artists-") {
		return headline, "Various Artists"
	}
	parts := strings.Split(slug, "-")
	last := parts[len(parts)-1]
	if len(parts) > 1 && len(last) <= 4 && strings.ToLower(last) == last {
		return strings.Join(parts[:len(parts)-1], " "), strings.ToUpper(last)
	}

	n := min(2, len(parts))
	artist = slugWords(strings.Join(parts[:n], "-"))
	title = headline
	if la := strings.ToLower(artist); la != "" && strings.Contains(strings.ToLower(title), la) {
		title = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(title), la, ""))
	}
	return title, artist
}

// parseScore reads a numeric score and checks it lies within 0..limit.
func parseScore(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > limit {
		return 0, fmt.Errorf("score %v out of range 0..%v", v, limit)
	}
	return v, nil
}
