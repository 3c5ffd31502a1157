// Package posts maps raw API posts into stable, display-ready records.
package posts

import (
	"strings"
	"time"

	"github.com/hashnode-blog/readme-action/internal/models"
)

// Normalizer applies defaults for missing upstream fields and derives the
// display date. It never fails: a bad date yields a sentinel string, not
// an error.
type Normalizer struct {
	dateFormat string
	now        func() time.Time
}

func NewNormalizer(dateFormat string) *Normalizer {
	return &Normalizer{
		dateFormat: dateFormat,
		now:        time.Now,
	}
}

// Normalize builds a PostRecord from a raw API post. The record is
// immutable after this point.
func (n *Normalizer) Normalize(raw models.RawPost) models.PostRecord {
	rec := models.PostRecord{
		ID:          raw.ID,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Brief),
		URL:         strings.TrimSpace(raw.URL),
		CoverImage:  strings.TrimSpace(raw.CoverImage.URL),
		PublishedAt: raw.PublishedAt,
		Author:      raw.Author,
		Tags:        raw.Tags,
		ReadTime:    raw.ReadTimeInMinutes,
	}

	if rec.Title == "" {
		rec.Title = "Untitled"
	}
	if rec.CoverImage == "" {
		rec.CoverImage = models.PlaceholderCover
	}
	if rec.Tags == nil {
		rec.Tags = []models.Tag{}
	}
	if rec.ReadTime < 0 {
		rec.ReadTime = 0
	}

	rec.FormattedDate = n.formatDate(raw.PublishedAt)

	return rec
}

// NormalizeAll maps a fetched batch in input order.
func (n *Normalizer) NormalizeAll(raw []models.RawPost) []models.PostRecord {
	records := make([]models.PostRecord, 0, len(raw))
	for _, p := range raw {
		records = append(records, n.Normalize(p))
	}
	return records
}
