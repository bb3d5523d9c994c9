package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// MaxTitleLen bounds board and item titles, and usernames.
	MaxTitleLen = 128
	// MaxDescriptionLen bounds board and item descriptions.
	MaxDescriptionLen = 256
	// MaxURLLen bounds activity links and image references.
	MaxURLLen = 2048
)

var (
	colorPattern    = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// ValidateUsername checks the login-name constraints.
func ValidateUsername(username string) error {
	if username == "" {
		return &InvalidAttributeError{Field: "username", Reason: "must not be blank"}
	}
	if len(username) > MaxTitleLen {
		return &InvalidAttributeError{Field: "username", Reason: fmt.Sprintf("longer than %d characters", MaxTitleLen)}
	}
	if !usernamePattern.MatchString(username) {
		return &InvalidAttributeError{Field: "username", Reason: "only letters, digits, '.', '_' and '-' allowed"}
	}
	return nil
}

// ValidateTitle checks the shared title constraints for boards and items.
// The field name is reported in the error so callers can distinguish.
func ValidateTitle(field, title string) error {
	if strings.TrimSpace(title) == "" {
		return &InvalidAttributeError{Field: field, Reason: "must not be blank"}
	}
	if len(title) > MaxTitleLen {
		return &InvalidAttributeError{Field: field, Reason: fmt.Sprintf("longer than %d characters", MaxTitleLen)}
	}
	return nil
}

// ValidateDescription checks the description length bound.
func ValidateDescription(field, description string) error {
	if len(description) > MaxDescriptionLen {
		return &InvalidAttributeError{Field: field, Reason: fmt.Sprintf("longer than %d characters", MaxDescriptionLen)}
	}
	return nil
}

// ValidateURL checks an optional link attribute: empty is fine,
// otherwise it must parse as an absolute URL and fit the length bound.
func ValidateURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	if len(raw) > MaxURLLen {
		return &InvalidAttributeError{Field: field, Reason: fmt.Sprintf("longer than %d characters", MaxURLLen)}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &InvalidAttributeError{Field: field, Reason: "not a valid URL"}
	}
	return nil
}

// ValidateColor checks the optional display color: "#RRGGBB" or empty.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorPattern.MatchString(color) {
		return &InvalidAttributeError{Field: "color", Reason: `must match "#RRGGBB"`}
	}
	return nil
}

// Validate checks every attribute of a new item.
func (a ItemAttrs) Validate() error {
	if err := ValidateTitle("title", a.Title); err != nil {
		return err
	}
	if err := ValidateDescription("description", a.Description); err != nil {
		return err
	}
	if err := ValidateURL("activity_url", a.ActivityURL); err != nil {
		return err
	}
	if err := ValidateURL("image_url", a.ImageURL); err != nil {
		return err
	}
	return ValidateColor(a.Color)
}

// Validate checks every set field of a patch with the same rules as
// item creation.
func (p ItemPatch) Validate() error {
	if p.Title != nil {
		if err := ValidateTitle("title", *p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := ValidateDescription("description", *p.Description); err != nil {
			return err
		}
	}
	if p.ActivityURL != nil {
		if err := ValidateURL("activity_url", *p.ActivityURL); err != nil {
			return err
		}
	}
	if p.ImageURL != nil {
		if err := ValidateURL("image_url", *p.ImageURL); err != nil {
			return err
		}
	}
	if p.Color != nil {
		return ValidateColor(*p.Color)
	}
	return nil
}
