package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"unicode"
)

var shortCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateShortCode checks that s could have been produced by GenerateShortCode.
func ValidateShortCode(shortCode string) error {
	if shortCode == "" {
		return fmt.Errorf("error.shortcode_required")
	}

	if ContainsWhitespace(shortCode) {
		return fmt.Errorf("error.shortcode_cannot_contain_spaces")
	}

	if len(shortCode) < MinShortCodeLength || len(shortCode) > MaxShortCodeLength ||
		!shortCodePattern.MatchString(shortCode) {
		return fmt.Errorf("error.shortcode_invalid")
	}

	return nil
}

// ValidateFullURL checks an absolute http(s) URL that fits the full_url column.
func ValidateFullURL(fullURL string) error {
	if fullURL == "" {
		return fmt.Errorf("error.full_url_required")
	}

	u, err := url.ParseRequestURI(fullURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("error.full_url_invalid")
	}

	if len(fullURL) > 512 {
		return fmt.Errorf("error.full_url_max_length")
	}
	return nil
}

// ParseID parses a positive numeric url id.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
