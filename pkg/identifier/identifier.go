// Package identifier parses resource identifiers of the form
// "<domain>:<path>" and normalizes the paths derived from them.
package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDomain is assumed for identifiers without a domain separator.
const DefaultDomain = "tfc"

// Separator splits the domain from the path.
const Separator = ":"

// ErrInvalidIdentifier is returned for identifiers that contain a templating
// character or more than one domain separator.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Split parses an identifier into its domain and relative path.
// "tfc:ore/copper" and "ore/copper" both yield ("tfc", "ore/copper").
func Split(id string) (domain, path string, err error) {
	if strings.ContainsAny(id, "{[") {
		return "", "", fmt.Errorf("%w: '%s'", ErrInvalidIdentifier, id)
	}

	switch strings.Count(id, Separator) {
	case 0:
		return DefaultDomain, id, nil
	case 1:
		domain, path, _ = strings.Cut(id, Separator)
		return domain, path, nil
	default:
		return "", "", fmt.Errorf("%w: '%s'", ErrInvalidIdentifier, id)
	}
}

// ApplyPrefix prepends prefix unless path already starts with it.
func ApplyPrefix(path, prefix string) string {
	if strings.HasPrefix(path, prefix) {
		return path
	}
	return prefix + path
}

// ApplySuffix appends suffix unless path already ends with it.
func ApplySuffix(path, suffix string) string {
	if strings.HasSuffix(path, suffix) {
		return path
	}
	return path + suffix
}

// Flatten turns a relative resource path into a single file name:
// every "/" becomes "_" and the "textures_" marker is removed, so
// "textures/blocks/ore.png" becomes "blocks_ore.png".
func Flatten(path string) string {
	flat := strings.ReplaceAll(path, "/", "_")
	return strings.ReplaceAll(flat, "textures_", "")
}
