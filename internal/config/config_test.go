package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("INPUT_PUBLICATION_NAME", "blog.example.dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PublicationName != "blog.example.dev" {
		t.Errorf("publication_name not picked up: %q", cfg.PublicationName)
	}
	if cfg.PostCount != 6 {
		t.Errorf("expected default post_count 6, got %d", cfg.PostCount)
	}
	if cfg.DisplayFormat != "stacked-left" {
		t.Errorf("expected default display_format stacked-left, got %q", cfg.DisplayFormat)
	}
	if cfg.Filename != "README.md" {
		t.Errorf("expected default filename README.md, got %q", cfg.Filename)
	}
	if cfg.CardWidth != 500 || cfg.ImageWidth != 100 || cfg.ImageHeight != 100 {
		t.Errorf("unexpected dimension defaults: %d/%d/%d", cfg.CardWidth, cfg.ImageWidth, cfg.ImageHeight)
	}
	if cfg.DateFormat != "MMM DD, YYYY" {
		t.Errorf("unexpected default date_format: %q", cfg.DateFormat)
	}
	if cfg.DescriptionLength != 200 {
		t.Errorf("expected default description_length 200, got %d", cfg.DescriptionLength)
	}
	if cfg.NoPostsMessage != "No blog posts found." {
		t.Errorf("unexpected default no_posts_message: %q", cfg.NoPostsMessage)
	}
	if cfg.TargetBranch != "main" {
		t.Errorf("expected default target_branch main, got %q", cfg.TargetBranch)
	}
	if cfg.LocalRun {
		t.Error("runs on GITHUB_ACTIONS should not default to local mode")
	}
}

func TestLoadRejectsNonIntegerCount(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("INPUT_PUBLICATION_NAME", "blog.example.dev")
	t.Setenv("INPUT_POST_COUNT", "1.5")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for post_count=1.5")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "post_count" {
		t.Errorf("error should name post_count, got %q", verr.Field)
	}
}

func TestLoadInputPrecedence(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("INPUT_PUBLICATION_NAME", "from-input")
	t.Setenv("PUBLICATION_NAME", "from-plain-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PublicationName != "from-input" {
		t.Errorf("INPUT_ variables should win over plain names, got %q", cfg.PublicationName)
	}
}

func TestLoadLocalModeOutsideRunner(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("PUBLICATION_NAME", "blog.example.dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.LocalRun {
		t.Error("runs outside GITHUB_ACTIONS should default to local mode")
	}
}
