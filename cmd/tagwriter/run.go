package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	runOut  string
	runJobs int
)

func init() {
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "write each document to DIR/<name>.html or DIR/<name>.xml instead of stdout")
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", 0, "number of scripts rendered at once (default from config)")
}

var runCmd = &cobra.Command{
	Use:   "run SCRIPT...",
	Short: "Render scripts to stdout or a directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyColor(cmd); err != nil {
			return err
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Render.Jobs = runJobs
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		r := newRenderer(cfg, cmd.ErrOrStderr(), log, nil)
		docs, err := r.renderFiles(cmd.Context(), args, cfg.Render.Jobs)
		if err != nil {
			return err
		}
		if runOut == "" {
			return writeDocuments(cmd.OutOrStdout(), docs)
		}
		return saveDocuments(runOut, docs)
	},
}

func writeDocuments(out io.Writer, docs []document) error {
	for _, doc := range docs {
		if _, err := out.Write(doc.body); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func saveDocuments(dir string, docs []document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, doc := range docs {
		path := filepath.Join(dir, doc.name+doc.ext())
		if err := os.WriteFile(path, doc.body, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", doc.name, err)
		}
	}
	return nil
}
