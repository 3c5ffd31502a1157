// Package action wires the pipeline: fetch, normalize, render, merge,
// write-if-changed.
package action

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hashnode-blog/readme-action/internal/config"
	"github.com/hashnode-blog/readme-action/internal/models"
	"github.com/hashnode-blog/readme-action/internal/posts"
	"github.com/hashnode-blog/readme-action/internal/render"
	"github.com/hashnode-blog/readme-action/internal/store"
	"github.com/hashnode-blog/readme-action/internal/utils"
)

// PostSource fetches the raw posts for a publication host.
type PostSource interface {
	RecentPosts(ctx context.Context, host string, count int) ([]models.RawPost, error)
}

// Result is what a completed run reports back to the caller.
type Result struct {
	PostCount int
	Changed   bool
	Commit    string
}

// Runner executes one synchronous pass of the pipeline. Each run is a
// fresh process; nothing is carried across invocations.
type Runner struct {
	cfg    *config.Config
	source PostSource
	store  store.Store
	log    zerolog.Logger
}

func NewRunner(cfg *config.Config, source PostSource, st store.Store, log zerolog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		source: source,
		store:  st,
		log:    log,
	}
}

// Run performs fetch, normalize, render, merge and conditional write.
// Either the merged document is committed completely or nothing changes.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	raw, err := r.source.RecentPosts(ctx, r.cfg.PublicationName, r.cfg.PostCount)
	if err != nil {
		return Result{}, err
	}

	normalizer := posts.NewNormalizer(r.cfg.DateFormat)
	records := normalizer.NormalizeAll(raw)

	renderer := render.NewRenderer(render.Options{
		Format:            r.cfg.DisplayFormat,
		CardWidth:         r.cfg.CardWidth,
		ImageWidth:        r.cfg.ImageWidth,
		ImageHeight:       r.cfg.ImageHeight,
		DescriptionLength: r.cfg.DescriptionLength,
		CustomCSS:         r.cfg.CustomCSS,
		NoPostsMessage:    r.cfg.NoPostsMessage,
	}, r.log)
	block := renderer.Render(records)

	current, err := r.store.Read(ctx, r.cfg.Filename)
	if err != nil {
		return Result{}, fmt.Errorf("reading target document: %w", err)
	}

	merged := render.Merge(current, block, r.cfg.SectionTitle)

	result := Result{PostCount: len(records)}

	if merged == current {
		r.log.Info().
			Str("document", r.cfg.Filename).
			Str("revision", utils.ShortHash(current)).
			Msg("Document already up to date, nothing to write")
		return result, nil
	}

	commit, err := r.store.Write(ctx, r.cfg.Filename, merged, r.cfg.CommitMessage)
	if err != nil {
		return Result{}, fmt.Errorf("writing target document: %w", err)
	}

	result.Changed = true
	result.Commit = commit

	r.log.Info().
		Str("document", r.cfg.Filename).
		Str("old_revision", utils.ShortHash(current)).
		Str("new_revision", utils.ShortHash(merged)).
		Str("commit", commit).
		Msg("Document updated")

	return result, nil
}
