package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/store"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "streamvault dev\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCatalogSeedWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"catalog", "seed", "--path", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	st, err := store.NewCatalogStore(path)
	if err != nil {
		t.Fatalf("NewCatalogStore: %v", err)
	}
	defer st.Close()

	data, ok, err := st.LoadCatalog()
	if err != nil || !ok {
		t.Fatalf("LoadCatalog: ok=%v err=%v", ok, err)
	}
	if len(data.Titles) != len(catalog.Builtin().Titles) {
		t.Errorf("seeded %d titles, want %d", len(data.Titles), len(catalog.Builtin().Titles))
	}
}

func TestPrintCatalog(t *testing.T) {
	c, err := catalog.New(catalog.Builtin())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	var out bytes.Buffer
	if err := printCatalog(&out, c); err != nil {
		t.Fatalf("printCatalog: %v", err)
	}
	for _, want := range []string{"Inception", "(featured)", "Trending Now:", "Top Rated:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}
