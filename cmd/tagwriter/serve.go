package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sternenseemann/tagwriter/internal/metrics"
	"github.com/sternenseemann/tagwriter/internal/script"
)

const indexName = "index"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scripts from a directory, rendering them on every request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyColor(cmd); err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		reg := prometheus.NewRegistry()
		r := newRenderer(cfg, cmd.ErrOrStderr(), log, metrics.New(metrics.WithRegistry(reg)))

		srv := &http.Server{
			Addr:              cfg.Serve.Addr,
			Handler:           newServer(r, cfg.Serve.Dir, reg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Info("listening", "addr", cfg.Serve.Addr, "dir", cfg.Serve.Dir)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

type server struct {
	r   *renderer
	dir string
}

// newServer routes /{name} to DIR/<name>.xml, / to the index script and
// /metrics to the registry.
func newServer(r *renderer, dir string, reg *prometheus.Registry) http.Handler {
	s := &server{r: r, dir: dir}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/", s.page)
	router.Get("/{name}", s.page)
	return router
}

func (s *server) page(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if name == "" {
		name = indexName
	}
	if strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		http.NotFound(w, req)
		return
	}

	sc, err := script.LoadFile(filepath.Join(s.dir, name+script.Ext))
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, req)
		return
	} else if err != nil {
		s.r.log.Error("loading script failed", "script", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	doc, err := s.r.render(sc)
	if err != nil {
		s.r.log.Error("rendering script failed", "script", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", doc.mediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.body)))
	if _, err := w.Write(doc.body); err != nil {
		s.r.log.Warn("writing response failed", "script", name, "err", err)
	}
}
