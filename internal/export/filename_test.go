package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFilename(t *testing.T) {
	cases := map[string]struct {
		url        string
		serverName string
		want       string
	}{
		"query stripped":       {"https://host/path/report.pdf?sig=abc", "", "report.pdf"},
		"plain url":            {"https://host/a/b/photo.png", "", "photo.png"},
		"fragment stripped":    {"https://host/doc.pdf#page=2", "", "doc.pdf"},
		"server name fallback": {"", "from-server.pdf", "from-server.pdf"},
		"generic fallback":     {"", "", "document"},
		"url wins over server": {"https://host/x/real.pdf?v=1", "other.pdf", "real.pdf"},
		"trailing slash":       {"https://host/dir/", "named.pdf", "named.pdf"},
		"traversal stripped":   {"", "../../etc/passwd", "passwd"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveFilename(tc.url, tc.serverName))
		})
	}
}
