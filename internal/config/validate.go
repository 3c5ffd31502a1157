package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single rejected configuration value. The
// first rule that fails wins; errors are never aggregated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

var (
	publicationRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	repositoryRe  = regexp.MustCompile(`^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`)
)

// Validate checks every configuration value before any network or file
// I/O happens. The first failing field aborts with a message naming the
// offending input and the violated constraint.
func (c *Config) Validate() error {
	v := validator.New()
	for name, fn := range map[string]validator.Func{
		"publication": validPublication,
		"safepath":    validFilename,
		"branchref":   validBranchRef,
	} {
		if err := v.RegisterValidation(name, fn); err != nil {
			return fmt.Errorf("registering %s validator: %w", name, err)
		}
	}

	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return describe(fieldErrs[0])
		}
		return err
	}

	if !c.LocalRun {
		if c.Token == "" {
			return &ValidationError{Field: "github_token", Reason: "is required outside local mode"}
		}
		if !repositoryRe.MatchString(c.Repository) {
			return &ValidationError{Field: "github_repository", Reason: `must look like "owner/name"`}
		}
	}

	return nil
}

func validPublication(fl validator.FieldLevel) bool {
	return publicationRe.MatchString(fl.Field().String())
}

func validFilename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return false
	}
	if len(name) >= 2 && name[1] == ':' {
		return false
	}
	if strings.ContainsAny(name, "<>:\"|?*\x00") {
		return false
	}
	for _, seg := range strings.Split(strings.ReplaceAll(name, "\\", "/"), "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}

// validBranchRef applies the usual git ref-name restrictions.
func validBranchRef(fl validator.FieldLevel) bool {
	ref := fl.Field().String()
	switch {
	case strings.HasPrefix(ref, ".") || strings.HasSuffix(ref, "."):
		return false
	case strings.HasPrefix(ref, "-") || strings.HasSuffix(ref, "/"):
		return false
	case strings.Contains(ref, ".."):
		return false
	case strings.ContainsAny(ref, " \t\n~^:?*[\\"):
		return false
	case strings.Contains(ref, "@{"):
		return false
	case strings.HasSuffix(ref, ".lock"):
		return false
	}
	return true
}

// inputNames maps struct fields back to the action input names users see.
var inputNames = map[string]string{
	"PublicationName":   "publication_name",
	"PostCount":         "post_count",
	"DisplayFormat":     "display_format",
	"Filename":          "filename",
	"CardWidth":         "card_width",
	"ImageWidth":        "image_width",
	"ImageHeight":       "image_height",
	"DescriptionLength": "description_length",
	"TargetBranch":      "target_branch",
}

func describe(fe validator.FieldError) *ValidationError {
	field := inputNames[fe.StructField()]
	if field == "" {
		field = fe.StructField()
	}

	isString := fe.Kind() == reflect.String

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "must not be empty"
	case "oneof":
		reason = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if isString {
			reason = fmt.Sprintf("must be at least %s characters", fe.Param())
		} else {
			reason = fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		if isString {
			reason = fmt.Sprintf("must be at most %s characters", fe.Param())
		} else {
			reason = fmt.Sprintf("must be at most %s", fe.Param())
		}
	case "publication":
		reason = "may only contain letters, digits, '-', '.' and '_'"
	case "safepath":
		reason = "must be a relative path without traversal segments or forbidden characters"
	case "branchref":
		reason = "is not a valid branch name"
	default:
		reason = fmt.Sprintf("failed the %s constraint", fe.Tag())
	}

	return &ValidationError{Field: field, Reason: reason}
}
