package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		doc  client.DocumentRecord
		want Kind
	}{
		"file_type image":     {client.DocumentRecord{FileType: "image", FileURL: "https://h/x.bin"}, Image},
		"file_type pdf":       {client.DocumentRecord{FileType: "pdf", FileURL: "https://h/x.bin"}, PDF},
		"png extension":       {client.DocumentRecord{FileURL: "https://h/photo.png"}, Image},
		"jpeg with query":     {client.DocumentRecord{FileURL: "https://h/p.jpeg?sig=1"}, Image},
		"pdf extension":       {client.DocumentRecord{FileURL: "https://h/doc.pdf"}, PDF},
		"unknown extension":   {client.DocumentRecord{FileURL: "https://h/data.xlsx"}, External},
		"no extension":        {client.DocumentRecord{FileURL: "https://h/blob"}, External},
		"empty record":        {client.DocumentRecord{}, External},
		"uppercase extension": {client.DocumentRecord{FileURL: "https://h/SCAN.JPG"}, Image},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.doc))
		})
	}
}

func TestInline_OnlyImages(t *testing.T) {
	assert.True(t, Inline(client.DocumentRecord{FileURL: "https://h/a.png"}))
	assert.False(t, Inline(client.DocumentRecord{FileURL: "https://h/a.pdf"}), "PDF is never inline")
	assert.False(t, Inline(client.DocumentRecord{FileURL: "https://h/a.txt"}))
}
