package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/sternenseemann/tagwriter"
	"github.com/sternenseemann/tagwriter/internal/config"
	"github.com/sternenseemann/tagwriter/internal/metrics"
	"github.com/sternenseemann/tagwriter/internal/script"
)

var (
	warnColor   = color.New(color.FgYellow, color.Bold)
	scriptColor = color.New(color.Bold)
)

// renderer renders scripts with the settings from the configuration and
// shows the diagnostics raised along the way. It may be shared between
// goroutines.
type renderer struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics

	mu     sync.Mutex
	stderr io.Writer
}

func newRenderer(cfg config.Config, stderr io.Writer, log *slog.Logger, m *metrics.Metrics) *renderer {
	return &renderer{cfg: cfg, stderr: stderr, log: log, metrics: m}
}

// document is a rendered script.
type document struct {
	name      string
	mediaType string
	body      []byte
}

// ext returns the file extension used when writing the document to disk.
func (d document) ext() string {
	mt, _, err := mime.ParseMediaType(d.mediaType)
	if err == nil && mt == "text/html" {
		return ".html"
	}
	return ".xml"
}

// render runs s into a buffer. Diagnostics never fail a render; they are
// shown according to the warnings mode.
func (r *renderer) render(s *script.Script) (document, error) {
	if s.Encoding == "" {
		s.Encoding = r.cfg.Encoding
	}

	dc := &tagwriter.Collector{}
	options := []tagwriter.Option{
		tagwriter.WithClosingSlash(r.cfg.ClosingSlash),
		tagwriter.WithReporter(dc),
	}
	if r.metrics != nil {
		options = append(options, tagwriter.WithReporter(r.metrics.Reporter()))
	}
	if r.cfg.Warnings == config.WarningsLog {
		options = append(options, tagwriter.WithLogger(r.log.With("script", s.Name)))
	}

	var b bytes.Buffer
	start := time.Now()
	err := s.Run(&b, options...)
	if r.metrics != nil {
		r.metrics.ObserveRender(s.Name, time.Since(start), err)
	}
	if r.cfg.Warnings == config.WarningsText {
		r.warn(s.Name, dc.Diagnostics)
	}
	if err != nil {
		return document{}, err
	}
	return document{
		name:      s.Name,
		mediaType: s.MediaType(r.cfg.ClosingSlash),
		body:      b.Bytes(),
	}, nil
}

func (r *renderer) warn(name string, diags []tagwriter.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range diags {
		scriptColor.Fprintf(r.stderr, "%s: ", name)
		warnColor.Fprint(r.stderr, "warning")
		fmt.Fprintf(r.stderr, " [%s] %s\n", d.Kind.Name(), d.Error())
	}
}

// renderFiles loads and renders the scripts at paths, at most jobs at a time.
// Documents are returned in the order of paths.
func (r *renderer) renderFiles(ctx context.Context, paths []string, jobs int) ([]document, error) {
	docs := make([]document, len(paths))
	if len(paths) == 0 {
		return docs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		i, path := i, path // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			s, err := script.LoadFile(path)
			if err != nil {
				return err
			}
			doc, err := r.render(s)
			if err != nil {
				return err
			}
			// indexes are unique per goroutine
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
