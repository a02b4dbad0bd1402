package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadMissingDefault(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != Default() {
		t.Errorf("got %+v, want defaults", *cfg)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "/etc/mii.toml"); err == nil {
		t.Error("expected an error for a missing explicit config")
	}
}

func TestLoad(t *testing.T) {
	tables := []struct {
		name     string
		contents string
		want     Config
		err      string
	}{
		{
			name:     "partial",
			contents: "format = \"JSON\"\n",
			want:     Config{Directory: ".", Format: "json", LogLevel: 2, Color: "auto"},
		},
		{
			name: "full",
			contents: `directory = "/srv/miis"
format = "table"
log_level = 4
color = "never"
`,
			want: Config{Directory: "/srv/miis", Format: "table", LogLevel: 4, Color: "never"},
		},
		{
			name:     "bad format",
			contents: "format = \"xml\"\n",
			err:      "unknown format",
		},
		{
			name:     "bad level",
			contents: "log_level = 9\n",
			err:      "log_level",
		},
		{
			name:     "bad color",
			contents: "color = \"sometimes\"\n",
			err:      "color",
		},
		{
			name:     "unknown key",
			contents: "colour = \"never\"\n",
			err:      "parse config",
		},
		{
			name:     "empty directory",
			contents: "directory = \"\"\n",
			err:      "directory",
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/config.toml", []byte(table.contents), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(fs, "/config.toml")
			if table.err != "" {
				if err == nil || !strings.Contains(err.Error(), table.err) {
					t.Fatalf("error = %v, want %q", err, table.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if *cfg != table.want {
				t.Errorf("got %+v, want %+v", *cfg, table.want)
			}
		})
	}
}
