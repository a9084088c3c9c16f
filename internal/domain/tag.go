package domain

import (
	"errors"
	"regexp"
	"strings"
)

// TagAlphabet is the character set the Clash of Clans API uses for player tags.
const TagAlphabet = "0289PYLQGRJCUV"

// ErrInvalidTag indicates the input cannot be normalized into a valid player tag.
var ErrInvalidTag = errors.New("invalid player tag")

var tagPattern = regexp.MustCompile(`^[` + TagAlphabet + `]+$`)

// NormalizeTag converts raw user input into canonical tag form: trimmed,
// upper-cased, without the leading '#'. Normalizing an already-normalized tag
// returns it unchanged.
func NormalizeTag(raw string) (string, error) {
	tag := strings.ToUpper(strings.TrimSpace(raw))
	tag = strings.TrimPrefix(tag, "#")
	if !tagPattern.MatchString(tag) {
		return "", ErrInvalidTag
	}
	return tag, nil
}

// EncodeTag renders a normalized tag as the upstream path segment, with the
// '#' prefix percent-encoded.
func EncodeTag(tag string) string {
	return "%23" + tag
}
