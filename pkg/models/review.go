package models

import (
	"strconv"
	"strings"
)

// Source identifies which review site produced a record.
type Source int

const (
	SourceA Source = iota // Pitchfork, scores out of 10
	SourceB               // Metacritic, scores out of 100
)

// String returns the display name of the review site.
func (s Source) String() string {
	switch s {
	case SourceA:
		return "Pitchfork"
	case SourceB:
		return "Metacritic"
	default:
		return "unknown"
	}
}

// Scale returns the maximum score the site uses.
func (s Source) Scale() Scale {
	if s == SourceA {
		return ScaleOfTen
	}
	return ScaleOfHundred
}

// MarshalText lets JSON output carry the site name instead of an integer.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Scale is the upper bound of a rating.
type Scale int

const (
	ScaleOfTen     Scale = 10
	ScaleOfHundred Scale = 100
)

// Rating is a score tagged with the scale it was given on. Construct it
// with OutOfTen or OutOfHundred so a value never loses its unit.
type Rating struct {
	Value float64 `json:"value"`
	Scale Scale   `json:"scale"`
}

func OutOfTen(v float64) Rating     { return Rating{Value: v, Scale: ScaleOfTen} }
func OutOfHundred(v float64) Rating { return Rating{Value: v, Scale: ScaleOfHundred} }

// String renders the rating as "<value>/<scale>", e.g. "8.4/10" or "95/100".
func (r Rating) String() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64) + "/" + strconv.Itoa(int(r.Scale))
}

// RawReview is an unreconciled record extracted from one site's page.
type RawReview struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Rating      Rating `json:"rating"`
	Source      Source `json:"source"`
	URL         string `json:"url"`
	Designation string `json:"designation,omitempty"` // e.g. "Best New Album"
}

// CanonicalReview is the merged view of one album across both sites.
//
// Title, Artist, Rating, Source and URL always come from the first site
// that reported the album. SecondaryRating is set only when the other
// site confirmed it, in which case Trusted is true.
type CanonicalReview struct {
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	Rating          Rating  `json:"rating"`
	Source          Source  `json:"source"`
	URL             string  `json:"url"`
	Designation     string  `json:"designation,omitempty"`
	Trusted         bool    `json:"trusted"`
	SecondaryRating *Rating `json:"secondary_rating,omitempty"`
}

// NewCanonical copies a raw record into an untrusted canonical entity.
func NewCanonical(r RawReview) CanonicalReview {
	return CanonicalReview{
		Title:       r.Title,
		Artist:      r.Artist,
		Rating:      r.Rating,
		Source:      r.Source,
		URL:         r.URL,
		Designation: r.Designation,
	}
}

// Key is the identity of an album: case-folded title and artist.
type Key struct {
	Title  string
	Artist string
}

// KeyOf lowercases title and artist. No other normalization is applied,
// so "Abc " and "abc" are different albums.
func KeyOf(r RawReview) Key {
	return Key{
		Title:  strings.ToLower(r.Title),
		Artist: strings.ToLower(r.Artist),
	}
}
