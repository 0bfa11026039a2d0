package config

import (
	"os"
	"path/filepath"
	"testing"

	tt "github.com/sternenseemann/tagwriter/testtool"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagwriter.toml")
	tt.OK(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	tt.Assert(t, cfg.ClosingSlash)
	tt.Equals(t, WarningsText, cfg.Warnings)
	tt.Assert(t, cfg.Render.Jobs >= 1)
	tt.OK(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
closing_slash = false
warnings = "log"

[serve]
addr = "127.0.0.1:9000"
dir = "pages"

[render]
jobs = 3
`)
	cfg, err := Load(path)
	tt.OK(t, err)
	tt.Assert(t, !cfg.ClosingSlash)
	tt.Equals(t, "utf-8", cfg.Encoding)
	tt.Equals(t, WarningsLog, cfg.Warnings)
	tt.Equals(t, Serve{Addr: "127.0.0.1:9000", Dir: "pages"}, cfg.Serve)
	tt.Equals(t, 3, cfg.Render.Jobs)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `encoding = "windows-1252"`))
	tt.OK(t, err)
	tt.Assert(t, cfg.ClosingSlash)
	tt.Equals(t, "windows-1252", cfg.Encoding)
	tt.Equals(t, ":8080", cfg.Serve.Addr)
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		ptn  string
	}{
		{"syntax", `closing_slash = `, `failed to parse TOML`},
		{"unknown", `colour = "red"`, `unknown keys: colour`},
		{"warnings", `warnings = "loud"`, `invalid warnings mode "loud"`},
		{"jobs", "[render]\njobs = 0", `render.jobs must be at least 1`},
		{"dir", "[serve]\ndir = \"\"", `serve.dir must not be empty`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.src))
			tt.Assert(t, err != nil)
			tt.Pattern(t, tc.ptn, err.Error())
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	tt.Assert(t, err != nil)
}
