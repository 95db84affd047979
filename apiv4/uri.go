package apiv4

import (
	"fmt"
	"strings"
)

// URIPrefix is the scheme prefix the v4 API uses to address files in the
// caller's own space.
const URIPrefix = "cloudreve://my/"

// PathToURI converts a file path to the v4 URI form. Absolute and
// relative paths are accepted; strings that already carry a cloudreve://
// scheme pass through unchanged.
func PathToURI(path string) string {
	if strings.HasPrefix(path, "cloudreve://") {
		return path
	}
	return URIPrefix + strings.TrimPrefix(path, "/")
}

// PathsToURIs converts each path with PathToURI.
func PathsToURIs(paths []string) []string {
	uris := make([]string, len(paths))
	for i, p := range paths {
		uris[i] = PathToURI(p)
	}
	return uris
}

// IsValidURI reports whether s addresses the caller's own file space.
func IsValidURI(s string) bool {
	return strings.HasPrefix(s, URIPrefix)
}

// URIToPath extracts the absolute path component from a v4 URI.
func URIToPath(uri string) (string, error) {
	if !IsValidURI(uri) {
		return "", fmt.Errorf("invalid cloudreve URI %q: expected %s... form", uri, URIPrefix)
	}
	return "/" + strings.TrimPrefix(uri, URIPrefix), nil
}
