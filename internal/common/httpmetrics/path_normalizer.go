package httpmetrics

import "strings"

var knownCollections = map[string]bool{
	"users": true,
}

// NormalizePath collapses the member segment of known collections so
// metric labels stay bounded: /users/alice becomes /users/{username}.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" || !knownCollections[parts[i-1]] {
			continue
		}
		parts[i] = "{username}"
	}

	return strings.Join(parts, "/")
}
