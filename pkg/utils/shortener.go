package utils

import (
	"fmt"
	"math/rand/v2"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Short code length bounds, inclusive.
const (
	MinShortCodeLength = 5
	MaxShortCodeLength = 8
)

// GenerateShortCode returns a random token of 5 to 8 characters from the nanoid
// default alphabet. Uniqueness is left to the database constraint.
func GenerateShortCode() (string, error) {
	size := MinShortCodeLength + rand.IntN(MaxShortCodeLength-MinShortCodeLength+1)
	code, err := gonanoid.New(size)
	if err != nil {
		return "", fmt.Errorf("generate short code: %w", err)
	}
	return code, nil
}
