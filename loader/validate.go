package loader

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/nathoo/termfolio/content"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled portfolio for consistency.
func validate(p *content.Portfolio) error {
	ve := &ValidationError{}

	if p.Profile.Name == "" {
		ve.Errors = append(ve.Errors, "Profile.name is required")
	}
	if len(p.Profile.Bio) == 0 {
		ve.Warnings = append(ve.Warnings, "Profile.bio is empty")
	}

	categories := map[string]bool{}
	for _, s := range p.Skills {
		if categories[s.Category] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate skill category %q", s.Category))
		}
		categories[s.Category] = true
		if len(s.Bullets) == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("skill %q has no bullets", s.Category))
		}
	}

	ids := map[string]bool{}
	for _, pr := range p.Projects {
		if ids[pr.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate project ID %q", pr.ID))
		}
		ids[pr.ID] = true

		if pr.Title == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("project %q has no title", pr.ID))
		}
		if !slices.Contains(content.Groups, pr.Group) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"project %q has unknown group %q", pr.ID, pr.Group))
		}
		if pr.Deployment != "" && !validURL(pr.Deployment) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"project %q deployment %q is not a URL", pr.ID, pr.Deployment))
		}
		for _, s := range pr.Sources {
			if !validURL(s.URL) {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"project %q source %q is not a URL", pr.ID, s.URL))
			}
		}
	}

	for _, c := range p.Contacts {
		if !validURL(c.URL) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"contact %q link %q is not a URL", c.Label, c.URL))
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validURL accepts absolute http(s) and mailto links.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}
