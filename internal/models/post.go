package models

// PlaceholderCover is used when a post has no cover image of its own.
const PlaceholderCover = "https://via.placeholder.com/800x400.png?text=Blog+Post"

// Author identifies who wrote a post.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Tag is a single topic label attached to a post.
type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RawPost is the post node shape returned by the Hashnode GraphQL API.
type RawPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Brief       string `json:"brief"`
	Slug        string `json:"slug"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	CoverImage  struct {
		URL string `json:"url"`
	} `json:"coverImage"`
	Author            Author `json:"author"`
	Tags              []Tag  `json:"tags"`
	ReadTimeInMinutes int    `json:"readTimeInMinutes"`
}

// PostRecord is the normalized, display-ready form of a post. It is built
// once per run from a RawPost and never mutated afterwards.
type PostRecord struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	CoverImage    string `json:"cover_image"`
	PublishedAt   string `json:"published_at,omitempty"`
	FormattedDate string `json:"formatted_date"`
	Author        Author `json:"author"`
	Tags          []Tag  `json:"tags"`
	ReadTime      int    `json:"read_time"`
}
