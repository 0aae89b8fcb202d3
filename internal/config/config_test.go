package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PickMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    PickMode
		wantErr bool
	}{
		{"interactive is valid", PickInteractive, false},
		{"first is valid", PickFirst, false},
		{"skip is valid", PickSkip, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "random", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Pick = tt.mode
			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v", err)
		})
	}
}

func TestValidate_Extension(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{".nk", ".nk", false},
		{"nk", ".nk", false},
		{" .NK ", ".nk", false},
		{"", "", true},
		{".", "", true},
		{"*.nk", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Extension = tt.in
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Extension)
		})
	}
}

func TestValidate_RequiresScript(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "no script and not CheckOnly")

	cfg.ScriptPath = "comp.yaml"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "comp.yaml", cfg.OutputPath, "output defaults to the script")
}

func TestValidate_Roots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.Roots = nil
	assert.Error(t, cfg.Validate())
}

func TestValidate_ReplaceTemplatesNeedsTemplates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.ReplaceTemplates = true
	assert.Error(t, cfg.Validate())

	cfg.Templates = []TemplateSpec{{Name: "x", Layout: "{root}/{file}"}}
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"P:/external"}, cfg.Roots)
	assert.Equal(t, ".nk", cfg.Extension)
	assert.Equal(t, PickInteractive, cfg.Pick)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.AllNodes)
}

func TestLoadConventions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conventions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
roots:
  - /mnt/p/external
  - /mnt/archive
extension: nk
aliases:
  Kite: KITE_S01
templates:
  - name: vendor
    layout: "{root}/vendor/{project}/{seqshot}/{file}"
    aliases:
      Kite: kite_vendor
`), 0o644))

	cfg := DefaultConfig()
	cfg.Aliases["Suntop"] = "SUNTOP_OLD"
	require.NoError(t, LoadConventions(&cfg, path))

	assert.Equal(t, []string{"/mnt/p/external", "/mnt/archive"}, cfg.Roots)
	assert.Equal(t, "nk", cfg.Extension)
	assert.Equal(t, "KITE_S01", cfg.Aliases["Kite"])
	assert.Equal(t, "SUNTOP_OLD", cfg.Aliases["Suntop"], "existing aliases kept")
	require.Len(t, cfg.Templates, 1)
	assert.Equal(t, "vendor", cfg.Templates[0].Name)
	assert.Equal(t, "kite_vendor", cfg.Templates[0].Aliases["Kite"])
	assert.False(t, cfg.ReplaceTemplates)
}

func TestLoadConventions_Errors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, LoadConventions(&cfg, filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("roots: [unclosed"), 0o644))
	assert.Error(t, LoadConventions(&cfg, bad))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvRoots, "/a"+string(os.PathListSeparator)+" /b ")
	t.Setenv(EnvConventions, "/etc/camswap.yaml")
	t.Setenv(EnvLogFile, "")

	cfg := DefaultConfig()
	LoadEnv(&cfg)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Roots)
	assert.Equal(t, "/etc/camswap.yaml", cfg.ConventionsFile)
	assert.Empty(t, cfg.LogFile)
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{
		"-r", "/first", "--root", "/second",
		"--ext", "abc", "--pick", "FIRST", "-a", "-d", "--no-color",
		"-o", "out.yaml", "comp.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/first", "/second"}, cfg.Roots)
	assert.Equal(t, "abc", cfg.Extension)
	assert.Equal(t, PickFirst, cfg.Pick)
	assert.True(t, cfg.AllNodes)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "out.yaml", cfg.OutputPath)
	assert.Equal(t, "comp.yaml", cfg.ScriptPath)
}

func TestParseFlags_FlagsOverrideConventions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roots: [/from/file]\nextension: .ma\n"), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--conventions", path, "--root", "/from/flag", "comp.yaml"}))
	assert.Equal(t, []string{"/from/flag"}, cfg.Roots)
	assert.Equal(t, ".ma", cfg.Extension)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no script", nil},
		{"two scripts", []string{"a.yaml", "b.yaml"}},
		{"bad pick", []string{"--pick", "maybe", "a.yaml"}},
		{"unknown flag", []string{"--nope", "a.yaml"}},
		{"missing conventions", []string{"--conventions", "/does/not/exist.yaml", "a.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, ParseFlags(&cfg, tt.args))
		})
	}
}

func TestParseFlags_CheckOnlyNeedsNoScript(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseFlags(&cfg, []string{"--check"}))
	assert.True(t, cfg.CheckOnly)
}
