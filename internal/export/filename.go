package export

import (
	"net/url"
	"path"
	"strings"
)

// fallbackName is used when neither the URL nor the server yields a name.
const fallbackName = "document"

// DeriveFilename produces a local filename for a stored document: the last
// path segment of its URL with any query stripped, falling back to the
// server-supplied name, then to a generic constant.
func DeriveFilename(fileURL, serverName string) string {
	if name := filenameFromURL(fileURL); name != "" {
		return name
	}
	if serverName != "" {
		return sanitize(serverName)
	}
	return fallbackName
}

// filenameFromURL extracts the last path segment of a URL, without query
// parameters or fragment. Returns "" when the URL has no usable segment.
func filenameFromURL(fileURL string) string {
	if fileURL == "" {
		return ""
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		// Not parseable as a URL; strip query/fragment markers by hand.
		if i := strings.IndexAny(fileURL, "?#"); i >= 0 {
			fileURL = fileURL[:i]
		}
		return sanitize(path.Base(fileURL))
	}

	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return ""
	}
	return sanitize(path.Base(u.Path))
}

// sanitize strips path separators so a server-controlled name can never
// escape the destination directory.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
