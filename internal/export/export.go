// Package export retrieves stored documents: single downloads saved to
// disk and best-effort bulk export of the current result set into one ZIP
// archive.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docuvault/docmgmt-mcp/internal/cache"
	"github.com/docuvault/docmgmt-mcp/internal/config"
	"github.com/docuvault/docmgmt-mcp/pkg/client"
)

// ErrNoResults means a bulk export was requested with nothing to export.
var ErrNoResults = errors.New("no results to export")

// Exporter fetches document files through a shared byte cache and writes
// them to the save directory.
type Exporter struct {
	client *client.Client
	files  *cache.FileCache
	cfg    *config.Config
}

// New creates an exporter.
func New(c *client.Client, files *cache.FileCache, cfg *config.Config) *Exporter {
	return &Exporter{client: c, files: files, cfg: cfg}
}

// Fetch retrieves a document's bytes, consulting the cache first.
func (e *Exporter) Fetch(ctx context.Context, fileURL string) (*cache.File, error) {
	if cached, ok := e.files.Get(fileURL); ok {
		return cached, nil
	}

	data, suggested, err := e.client.FetchFile(ctx, fileURL)
	if err != nil {
		return nil, err
	}

	f := &cache.File{Data: data, SuggestedName: suggested}
	e.files.Put(fileURL, f)
	return f, nil
}

// Download fetches a single document and saves it under the save
// directory. The filename comes from the record's URL, then the server's
// suggestion, then the record's own file_name. Returns the written path.
func (e *Exporter) Download(ctx context.Context, doc client.DocumentRecord) (string, error) {
	if doc.FileURL == "" {
		return "", fmt.Errorf("document %q has no file URL", doc.FileName)
	}

	f, err := e.Fetch(ctx, doc.FileURL)
	if err != nil {
		return "", fmt.Errorf("downloading %q: %w", doc.FileName, err)
	}

	serverName := f.SuggestedName
	if serverName == "" {
		serverName = doc.FileName
	}
	name := DeriveFilename(doc.FileURL, serverName)

	dest := filepath.Join(e.cfg.SaveDir, name)
	if err := os.MkdirAll(e.cfg.SaveDir, 0755); err != nil {
		return "", fmt.Errorf("creating save dir: %w", err)
	}
	if err := os.WriteFile(dest, f.Data, 0644); err != nil {
		return "", fmt.Errorf("saving %q: %w", name, err)
	}

	slog.Info("document downloaded",
		slog.String("file", name),
		slog.Int("bytes", len(f.Data)),
	)
	return dest, nil
}

// Result summarizes a bulk export: which files made it into the archive
// and which were omitted because their fetch failed.
type Result struct {
	ArchivePath string
	Archived    []string
	Failed      []string
}

// ExportAll fetches every document in docs with a bounded worker pool and
// packs the successes into a single ZIP archive under the save directory.
//
// Semantics are best-effort: a failing file is logged, omitted, and listed
// in Result.Failed; the archive is still produced and saved as long as at
// least one document was requested. There is no early return once the
// export starts, beyond context cancellation.
func (e *Exporter) ExportAll(ctx context.Context, docs []client.DocumentRecord) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoResults
	}

	start := time.Now()
	fetched := make([]*cache.File, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.ExportWorkers)

	for i, doc := range docs {
		g.Go(func() error {
			if doc.FileURL == "" {
				return nil
			}
			f, err := e.Fetch(gctx, doc.FileURL)
			if err != nil {
				// Best effort: omit this file, keep the export going.
				slog.Warn("bulk export: file fetch failed",
					slog.String("file", doc.FileName),
					slog.String("url", doc.FileURL),
					slog.String("error", err.Error()),
				)
				return nil
			}
			fetched[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, doc := range docs {
		f := fetched[i]
		name := e.archiveName(doc, f)
		if f == nil {
			result.Failed = append(result.Failed, name)
			continue
		}

		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("adding %q to archive: %w", name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("writing %q to archive: %w", name, err)
		}
		result.Archived = append(result.Archived, name)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	if err := os.MkdirAll(e.cfg.SaveDir, 0755); err != nil {
		return nil, fmt.Errorf("creating save dir: %w", err)
	}
	result.ArchivePath = filepath.Join(e.cfg.SaveDir, e.cfg.ExportArchiveName)
	if err := os.WriteFile(result.ArchivePath, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("saving archive: %w", err)
	}

	slog.Info("bulk export completed",
		slog.String("archive", result.ArchivePath),
		slog.Int("archived", len(result.Archived)),
		slog.Int("failed", len(result.Failed)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return result, nil
}

// archiveName picks the entry name for a document inside the archive.
func (e *Exporter) archiveName(doc client.DocumentRecord, f *cache.File) string {
	serverName := doc.FileName
	if f != nil && f.SuggestedName != "" {
		serverName = f.SuggestedName
	}
	return DeriveFilename(doc.FileURL, serverName)
}
