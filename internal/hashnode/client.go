package hashnode

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/hashnode-blog/readme-action/internal/models"
)

const postsQuery = `query Publication($host: String!, $first: Int!) {
  publication(host: $host) {
    posts(first: $first) {
      edges {
        node {
          id
          title
          brief
          slug
          url
          publishedAt
          readTimeInMinutes
          coverImage { url }
          author { name username }
          tags { name slug }
        }
      }
    }
  }
}`

// Client fetches publication posts from the Hashnode GraphQL API.
// One request per run, no retries; the timeout is the only bound.
type Client struct {
	client *resty.Client
	log    zerolog.Logger
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlResponse struct {
	Data *struct {
		Publication *struct {
			Posts struct {
				Edges []struct {
					Node models.RawPost `json:"node"`
				} `json:"edges"`
			} `json:"posts"`
		} `json:"publication"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func NewClient(endpoint string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(endpoint).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		log: log,
	}
}

// RecentPosts returns up to count posts for the publication identified by
// host, newest first, in the order the API reports them.
func (c *Client) RecentPosts(ctx context.Context, host string, count int) ([]models.RawPost, error) {
	start := time.Now()

	req := gqlRequest{
		Query: postsQuery,
		Variables: map[string]any{
			"host":  host,
			"first": count,
		},
	}

	var out gqlResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("")

	if err != nil {
		return nil, &FetchError{
			Kind:    ErrUnreachable,
			Message: fmt.Sprintf("Hashnode API unreachable: %v", err),
			Err:     err,
		}
	}

	if !resp.IsSuccess() {
		return nil, &FetchError{
			Kind:    ErrRejected,
			Message: fmt.Sprintf("Hashnode API rejected request with status %d", resp.StatusCode()),
		}
	}

	if len(out.Errors) > 0 {
		return nil, &FetchError{
			Kind:    ErrRejected,
			Message: fmt.Sprintf("Hashnode API rejected request: %s", out.Errors[0].Message),
		}
	}

	if out.Data == nil || out.Data.Publication == nil {
		return nil, &FetchError{
			Kind:    ErrPublicationMissing,
			Message: fmt.Sprintf("publication %q not found", host),
		}
	}

	edges := out.Data.Publication.Posts.Edges
	posts := make([]models.RawPost, 0, len(edges))
	for _, edge := range edges {
		posts = append(posts, edge.Node)
	}

	c.log.Info().
		Str("publication", host).
		Int("posts", len(posts)).
		Dur("fetch_duration", time.Since(start)).
		Msg("Fetched publication posts")

	return posts, nil
}
