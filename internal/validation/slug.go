package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphens  = regexp.MustCompile(`-{2,}`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	maxSlugRunes = 100
)

// Slugify строит slug из названия: нижний регистр, пробелы в дефисы,
// всё кроме [a-z0-9-] удаляется, повторные дефисы схлопываются.
// "Cloud & DevOps" -> "cloud-devops", "Front End" и "Front-End" -> "front-end".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateSlug проверяет уже нормализованный slug.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug не может быть пустым: название должно содержать латинские буквы или цифры")
	}
	if len(slug) > maxSlugRunes {
		return fmt.Errorf("slug должен быть не более %d символов", maxSlugRunes)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug может содержать только a-z, 0-9 и дефис")
	}
	return nil
}
