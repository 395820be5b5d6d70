package rxkit

import (
	"strings"
)

// SitesRoot is the root folder of all site content
const SitesRoot = "//Sites"

// IsUnderSitesRoot reports whether path is the sites root folder or lives below it.
// An empty path is treated as missing and rejected.
func IsUnderSitesRoot(path string) (bool, error) {
	if len(path) == 0 {
		return false, &InvalidArgumentError{Name: "path", Reason: "must not be empty"}
	}

	path = NormalizeSeparators(path)
	return path == SitesRoot || strings.HasPrefix(path, SitesRoot+"/"), nil
}

// NormalizeSeparators replaces every backslash with a forward slash
func NormalizeSeparators(path string) string {
	if len(path) == 0 {
		return path
	}

	return strings.ReplaceAll(path, "\\", "/")
}

// JoinSitePath joins the elements under SitesRoot
func JoinSitePath(elems ...string) string {
	parts := []string{SitesRoot}
	for _, e := range elems {
		e = strings.Trim(NormalizeSeparators(e), "/")
		if e != "" {
			parts = append(parts, e)
		}
	}

	return strings.Join(parts, "/")
}
