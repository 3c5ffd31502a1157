package posts

import (
	"testing"
	"time"

	"github.com/hashnode-blog/readme-action/internal/models"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	n := NewNormalizer("MMM DD, YYYY")
	rec := n.Normalize(models.RawPost{ID: "p1", ReadTimeInMinutes: -2})

	if rec.Title != "Untitled" {
		t.Errorf("expected default title 'Untitled', got %q", rec.Title)
	}
	if rec.CoverImage != models.PlaceholderCover {
		t.Errorf("expected placeholder cover image, got %q", rec.CoverImage)
	}
	if rec.Tags == nil || len(rec.Tags) != 0 {
		t.Errorf("expected empty tag slice, got %#v", rec.Tags)
	}
	if rec.ReadTime != 0 {
		t.Errorf("negative read time should clamp to 0, got %d", rec.ReadTime)
	}
	if rec.FormattedDate != "Unknown date" {
		t.Errorf("missing publishedAt should yield 'Unknown date', got %q", rec.FormattedDate)
	}
}

func TestNormalizeKeepsProvidedFields(t *testing.T) {
	raw := models.RawPost{
		ID:          "p2",
		Title:       "  Hello Go  ",
		Brief:       "A post about Go.",
		URL:         "https://blog.example.dev/hello-go",
		PublishedAt: "2025-03-15T10:30:00Z",
		Author:      models.Author{Name: "Ada", Username: "ada"},
		Tags:        []models.Tag{{Name: "Go", Slug: "go"}},

		ReadTimeInMinutes: 4,
	}
	raw.CoverImage.URL = "https://cdn.example.dev/cover.png"

	rec := NewNormalizer("MMM DD, YYYY").Normalize(raw)

	if rec.Title != "Hello Go" {
		t.Errorf("title should be trimmed, got %q", rec.Title)
	}
	if rec.CoverImage != "https://cdn.example.dev/cover.png" {
		t.Errorf("cover image should be kept, got %q", rec.CoverImage)
	}
	if rec.FormattedDate != "Mar 15, 2025" {
		t.Errorf("expected 'Mar 15, 2025', got %q", rec.FormattedDate)
	}
	if rec.Author.Name != "Ada" || rec.ReadTime != 4 {
		t.Errorf("author/read time not carried over: %#v", rec)
	}
}

func TestFormatDateSentinels(t *testing.T) {
	n := NewNormalizer("MMM DD, YYYY")

	if got := n.formatDate(""); got != "Unknown date" {
		t.Errorf("empty date: expected 'Unknown date', got %q", got)
	}
	if got := n.formatDate("yesterday-ish"); got != "Invalid date" {
		t.Errorf("unparseable date: expected 'Invalid date', got %q", got)
	}
}

func TestFormatDateTokens(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"MMM DD, YYYY", "Mar 05, 2025"},
		{"MMMM D, YYYY", "March 5, 2025"},
		{"DD/MM/YYYY", "05/03/2025"},
		{"YY-MM-DD", "25-03-05"},
	}

	for _, tc := range cases {
		n := NewNormalizer(tc.format)
		if got := n.formatDate("2025-03-05T08:00:00Z"); got != tc.want {
			t.Errorf("format %q: expected %q, got %q", tc.format, tc.want, got)
		}
	}
}

func TestRelativeDateBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := NewNormalizer(FormatRelative)
	n.now = func() time.Time { return now }

	cases := []struct {
		published time.Time
		want      string
	}{
		{now.Add(-30 * time.Second), "Just now"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-45 * time.Minute), "45 minutes ago"},
		{now.Add(-1 * time.Hour), "1 hour ago"},
		{now.Add(-23 * time.Hour), "23 hours ago"},
		{now.Add(-24 * time.Hour), "1 day ago"},
		{now.Add(-6 * 24 * time.Hour), "6 days ago"},
		{now.Add(-7 * 24 * time.Hour), "1 week ago"},
		{now.Add(-21 * 24 * time.Hour), "3 weeks ago"},
		{now.Add(-31 * 24 * time.Hour), "1 month ago"},
		{now.Add(-200 * 24 * time.Hour), "6 months ago"},
		{now.Add(-400 * 24 * time.Hour), "1 year ago"},
		{now.Add(-800 * 24 * time.Hour), "2 years ago"},
	}

	for _, tc := range cases {
		got := n.formatDate(tc.published.Format(time.RFC3339))
		if got != tc.want {
			t.Errorf("published %s: expected %q, got %q", tc.published, tc.want, got)
		}
	}
}
