package scraper

import (
	"strings"
	"testing"

	"albumfeed/pkg/models"
	"albumfeed/pkg/utils"
)

const metacriticListing = `<html><body>
<div class="clamp-metascore"><a href="/music/sable-fable/bon-iver/critic-reviews"><div class="metascore_w">92</div></a></div>
<div class="clamp-metascore"><a href="/music/fine-record/some-band/critic-reviews"><div class="metascore_w">85</div></a></div>
<div class="clamp-metascore"><a href="/music/pending/someone/critic-reviews"><div class="metascore_w">tbd</div></a></div>
<div class="clamp-metascore"><a href="/bad"><div class="metascore_w">95</div></a></div>
<div class="clamp-metascore"><a href="/music/gnx/kendrick-lamar/critic-reviews"><div class="metascore_w">90</div></a></div>
<div class="clamp-metascore"><span>advertisement</span></div>
</body></html>`

func TestSourceBParse(t *testing.T) {
	src := NewSourceB(nil, utils.Default().Metacritic)
	ex, err := src.Parse(strings.NewReader(metacriticListing))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(ex.Reviews) != 2 {
		t.Fatalf("got %d reviews, want 2: %+v", len(ex.Reviews), ex.Reviews)
	}
	if ex.Skipped != 2 {
		t.Fatalf("got %d skipped, want 2", ex.Skipped)
	}

	want := models.RawReview{
		Title:  "Sable Fable",
		Artist: "Bon Iver",
		Rating: models.OutOfHundred(92),
		Source: models.SourceB,
		URL:    "https://www.metacritic.com/music/sable-fable/bon-iver/critic-reviews",
	}
	if ex.Reviews[0] != want {
		t.Fatalf("unexpected first review:\n got %+v\nwant %+v", ex.Reviews[0], want)
	}
	if ex.Reviews[1].Title != "Gnx" || ex.Reviews[1].Artist != "Kendrick Lamar" {
		t.Fatalf("unexpected second review: %+v", ex.Reviews[1])
	}
}

func TestSourceBThresholdIsConfigurable(t *testing.T) {
	rules := utils.Default().Metacritic
	rules.Threshold = 80
	ex, err := NewSourceB(nil, rules).Parse(strings.NewReader(metacriticListing))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(ex.Reviews) != 3 {
		t.Fatalf("got %d reviews, want 3", len(ex.Reviews))
	}
}

func TestSourceBParseAbsoluteLinks(t *testing.T) {
	page := `<div class="clamp-metascore"><a href="https://www.metacritic.com/music/in-rainbows/radiohead/critic-reviews"><div class="metascore_w">98</div></a></div>`
	ex, err := NewSourceB(nil, utils.Default().Metacritic).Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(ex.Reviews) != 1 {
		t.Fatalf("got %d reviews, want 1 (skipped %d)", len(ex.Reviews), ex.Skipped)
	}
	got := ex.Reviews[0]
	if got.Title != "In Rainbows" || got.Artist != "Radiohead" {
		t.Fatalf("unexpected identity: %q by %q", got.Title, got.Artist)
	}
	if got.URL != "https://www.metacritic.com/music/in-rainbows/radiohead/critic-reviews" {
		t.Fatalf("unexpected url: %q", got.URL)
	}
}

func TestSplitMusicPath(t *testing.T) {
	tests := []struct {
		href          string
		title, artist string
		ok            bool
	}{
		{"/music/in-rainbows/radiohead/critic-reviews", "In Rainbows", "Radiohead", true},
		{"/music/in-rainbows/radiohead", "In Rainbows", "Radiohead", true},
		{"/music/in-rainbows", "", "", false},
		{"/music//radiohead", "", "", false},
		{"https://www.metacritic.com/music/in-rainbows/radiohead/critic-reviews", "In Rainbows", "Radiohead", true},
		{"/music/in-rainbows/radiohead/critic-reviews?ref=hp", "In Rainbows", "Radiohead", true},
	}
	for _, tt := range tests {
		title, artist, ok := splitMusicPath(tt.href)
		if ok != tt.ok || title != tt.title || artist != tt.artist {
			t.Fatalf("splitMusicPath(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.href, title, artist, ok, tt.title, tt.artist, tt.ok)
		}
	}
}
