package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// GitHub persists the document through the GitHub REST contents API,
// committing writes to a fixed branch.
type GitHub struct {
	client *resty.Client
	repo   string // "owner/name"
	branch string
	log    zerolog.Logger

	// blob shas seen at Read time, required by the contents API when
	// updating an existing file
	shas map[string]string
}

type contentResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

type commitResponse struct {
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

func NewGitHub(apiURL, token, repo, branch string, log zerolog.Logger) *GitHub {
	return &GitHub{
		client: resty.New().
			SetBaseURL(apiURL).
			SetTimeout(30*time.Second).
			SetAuthToken(token).
			SetHeader("Accept", "application/vnd.github+json"),
		repo:   repo,
		branch: branch,
		log:    log,
		shas:   make(map[string]string),
	}
}

func (g *GitHub) Read(ctx context.Context, path string) (string, error) {
	var out contentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("ref", g.branch).
		SetResult(&out).
		Get(fmt.Sprintf("/repos/%s/contents/%s", g.repo, path))

	if err != nil {
		return "", fmt.Errorf("reading %s from %s: %w", path, g.repo, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		g.log.Info().Str("path", path).Msg("Document does not exist yet, starting from empty")
		return "", nil
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("reading %s from %s: unexpected status %d", path, g.repo, resp.StatusCode())
	}

	g.shas[path] = out.SHA

	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(out.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decoding %s content: %w", path, err)
	}

	return string(raw), nil
}

func (g *GitHub) Write(ctx context.Context, path, content, message string) (string, error) {
	body := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  g.branch,
	}
	if sha, ok := g.shas[path]; ok && sha != "" {
		body["sha"] = sha
	}

	var out commitResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Put(fmt.Sprintf("/repos/%s/contents/%s", g.repo, path))

	if err != nil {
		return "", fmt.Errorf("writing %s to %s: %w", path, g.repo, err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("writing %s to %s: unexpected status %d", path, g.repo, resp.StatusCode())
	}

	g.log.Info().
		Str("path", path).
		Str("branch", g.branch).
		Str("commit", out.Commit.SHA).
		Msg("Committed document")

	return out.Commit.SHA, nil
}
