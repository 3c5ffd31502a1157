package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a single run. Inputs arrive as
// GitHub Action INPUT_* environment variables; plain variable names are
// accepted as a fallback for local runs. Field order matters: validation
// reports the first failing field in declaration order.
type Config struct {
	// Publication inputs
	PublicationName string `validate:"required,max=100,publication"`
	PostCount       int    `validate:"min=1,max=12"`
	DisplayFormat   string `validate:"oneof=card stacked-left stacked-right list table"`
	Filename        string `validate:"required,max=255,safepath"`

	// Rendering customization
	CardWidth         int    `validate:"min=100,max=1200"`
	ImageWidth        int    `validate:"min=50,max=500"`
	ImageHeight       int    `validate:"min=50,max=500"`
	DescriptionLength int    `validate:"min=50,max=1000"`
	DateFormat        string `validate:"-"`
	CustomCSS         string `validate:"-"`
	SectionTitle      string `validate:"-"`
	NoPostsMessage    string `validate:"-"`
	TargetBranch      string `validate:"omitempty,max=250,branchref"`
	CommitMessage     string `validate:"-"`

	// Runner environment
	Token        string        `validate:"-"`
	Repository   string        `validate:"-"`
	LocalRun     bool          `validate:"-"`
	LocalDir     string        `validate:"-"`
	APIEndpoint  string        `validate:"-"`
	GitHubAPIURL string        `validate:"-"`
	FetchTimeout time.Duration `validate:"-"`

	// Logging
	LogLevel  string `validate:"-"`
	LogPretty bool   `validate:"-"`
}

// Load reads configuration from the environment. It returns an error for
// malformed values instead of exiting; the caller decides how to fail.
func Load() (*Config, error) {
	onRunner := os.Getenv("GITHUB_ACTIONS") == "true"

	// Load .env for local runs if one exists
	if !onRunner {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := &Config{
		PublicationName: input("publication_name", ""),
		DisplayFormat:   input("display_format", "stacked-left"),
		Filename:        input("filename", "README.md"),
		DateFormat:      input("date_format", "MMM DD, YYYY"),
		CustomCSS:       input("custom_css", ""),
		SectionTitle:    input("section_title", "Latest Blog Posts"),
		NoPostsMessage:  input("no_posts_message", "No blog posts found."),
		TargetBranch:    input("target_branch", "main"),
		CommitMessage:   input("commit_message", "docs: update blog posts section"),

		Token:        getEnv("GITHUB_TOKEN", ""),
		Repository:   getEnv("GITHUB_REPOSITORY", ""),
		LocalRun:     getEnvAsBool("LOCAL_RUN", !onRunner),
		LocalDir:     getEnv("LOCAL_DIR", "."),
		APIEndpoint:  getEnv("HASHNODE_API_URL", "https://gql.hashnode.com"),
		GitHubAPIURL: getEnv("GITHUB_API_URL", "https://api.github.com"),
		FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", !onRunner),
	}

	var err error
	if cfg.PostCount, err = inputInt("post_count", 6); err != nil {
		return nil, err
	}
	if cfg.CardWidth, err = inputInt("card_width", 500); err != nil {
		return nil, err
	}
	if cfg.ImageWidth, err = inputInt("image_width", 100); err != nil {
		return nil, err
	}
	if cfg.ImageHeight, err = inputInt("image_height", 100); err != nil {
		return nil, err
	}
	if cfg.DescriptionLength, err = inputInt("description_length", 200); err != nil {
		return nil, err
	}

	return cfg, nil
}

// input resolves an action input: INPUT_<NAME> first (how the runner
// exposes action inputs), then the bare uppercase name for local runs.
func input(name, defaultValue string) string {
	upper := strings.ToUpper(name)
	if value, exists := os.LookupEnv("INPUT_" + upper); exists && value != "" {
		return value
	}
	if value, exists := os.LookupEnv(upper); exists && value != "" {
		return value
	}
	return defaultValue
}

// inputInt resolves an integer action input. A value that does not parse
// as an integer (e.g. "1.5") is a configuration error, not a fallback to
// the default.
func inputInt(name string, defaultVal int) (int, error) {
	valueStr := input(name, "")
	if valueStr == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, &ValidationError{
			Field:  name,
			Reason: fmt.Sprintf("must be an integer, got %q", valueStr),
		}
	}
	return value, nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultVal
	}
	return value
}
