package site

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^/[A-Za-z0-9\-._~/]*$`)
)

// Severity grades an Issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is one finding of Validate. Issues never prevent rendering.
type Issue struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// validatorInstance configures and returns the shared validator used for documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks a definition against the block schemas. It is lenient:
// everything it reports is still renderable.
func Validate(def *Definition) []Issue {
	if def == nil {
		return []Issue{{Path: "", Message: "definition is nil", Severity: SeverityError}}
	}

	var issues []Issue
	issues = append(issues, structIssues("metadata", def.Metadata)...)
	issues = append(issues, structIssues("theme", def.Theme)...)

	if len(def.Pages) == 0 {
		issues = append(issues, Issue{Path: "pages", Message: "site has no pages", Severity: SeverityWarning})
	}

	slugs := make(map[string]int, len(def.Pages))
	for i, page := range def.Pages {
		pagePath := fmt.Sprintf("pages[%d]", i)
		issues = append(issues, structIssues(pagePath, page)...)

		if first, seen := slugs[page.Slug]; seen && page.Slug != "" {
			issues = append(issues, Issue{
				Path:     pagePath + ".slug",
				Message:  fmt.Sprintf("duplicate slug %q, pages[%d] wins", page.Slug, first),
				Severity: SeverityWarning,
			})
		} else {
			slugs[page.Slug] = i
		}

		issues = append(issues, sectionIssues(pagePath, page.Sections)...)
	}

	return issues
}

func sectionIssues(pagePath string, sections []Section) []Issue {
	var issues []Issue
	ids := make(map[string]struct{}, len(sections))

	for j, sec := range sections {
		path := fmt.Sprintf("%s.sections[%d]", pagePath, j)

		if sec.ID == "" {
			issues = append(issues, Issue{Path: path + ".id", Message: "id is required", Severity: SeverityError})
		} else if _, dup := ids[sec.ID]; dup {
			issues = append(issues, Issue{Path: path + ".id", Message: fmt.Sprintf("duplicate section id %q", sec.ID), Severity: SeverityWarning})
		}
		ids[sec.ID] = struct{}{}

		for _, r := range sec.Repairs() {
			issues = append(issues, Issue{Path: path + "." + r.Field, Message: r.Message, Severity: SeverityWarning})
		}

		switch c := sec.Content.(type) {
		case nil:
			issues = append(issues, Issue{Path: path + ".content", Message: "content is missing", Severity: SeverityError})
		case *UnknownContent:
			severity := SeverityWarning
			if c.Err != nil {
				severity = SeverityError
			}
			issues = append(issues, Issue{Path: path + ".type", Message: c.Reason(), Severity: severity})
		default:
			issues = append(issues, structIssues(path+".content", c)...)
		}
	}

	return issues
}

func structIssues(prefix string, value any) []Issue {
	err := validatorInstance().Struct(value)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []Issue{{Path: prefix, Message: err.Error(), Severity: SeverityError}}
	}

	issues := make([]Issue, 0, len(ves))
	for _, fe := range ves {
		field := fieldPath(fe)
		issues = append(issues, Issue{
			Path:     joinPath(prefix, field),
			Message:  fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()),
			Severity: SeverityError,
		})
	}
	return issues
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}
