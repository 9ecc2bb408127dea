// Package preview classifies stored documents for display: recognized
// image types render inline, everything else (including PDF) is handed to
// an external opener. This is deliberately not a rich preview engine.
package preview

import (
	"net/url"
	"path"
	"strings"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// Kind is a broad display classification.
type Kind string

const (
	Image    Kind = "image"    // render inline
	PDF      Kind = "pdf"      // open externally, recognized distinctly
	External Kind = "external" // open externally
)

// imageExtensions covers the formats rendered inline.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Classify determines how a document record should be presented. The
// server's file_type field wins when present ("image"/"pdf"); otherwise
// the file URL's extension decides.
func Classify(doc client.DocumentRecord) Kind {
	switch strings.ToLower(doc.FileType) {
	case "image":
		return Image
	case "pdf":
		return PDF
	}

	ext := extension(doc.FileURL)
	switch {
	case imageExtensions[ext]:
		return Image
	case ext == ".pdf":
		return PDF
	default:
		return External
	}
}

// Inline reports whether the document renders inline. Only images do; PDF
// and everything else fall back to an explicit open-externally action.
func Inline(doc client.DocumentRecord) bool {
	return Classify(doc) == Image
}

// extension returns the lowercased extension of a URL's last path segment,
// ignoring query parameters and fragments.
func extension(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		if i := strings.IndexAny(fileURL, "?#"); i >= 0 {
			fileURL = fileURL[:i]
		}
		return strings.ToLower(path.Ext(fileURL))
	}
	return strings.ToLower(path.Ext(u.Path))
}
