package threadchart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thiagonache/threadchart"
)

func TestDefaultConfigReproducesOriginalRun(t *testing.T) {
	t.Parallel()
	want := threadchart.Config{
		Balanced:    "threadsBalanced.csv",
		NotBalanced: "threadsUnBalanced.csv",
		Output:      "Visualização.png",
		Title:       "Impacto do Balanceamento de Carga no Desempenho de Processamento",
		DPI:         300,
		Show:        true,
		LogLevel:    "info",
	}
	got := threadchart.DefaultConfig()
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestLoadConfigOverridesOnlyKeysInFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	err := os.WriteFile(path, []byte("output: primes.svg\ndpi: 150\nshow: false\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	got, err := threadchart.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := threadchart.DefaultConfig()
	want.Output = "primes.svg"
	want.DPI = 150
	want.Show = false
	if !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestLoadConfigWithInvalidYAMLReturnsError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	err := os.WriteFile(path, []byte("dpi: [300\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = threadchart.LoadConfig(path)
	if err == nil {
		t.Fatal("want error for invalid YAML")
	}
}

func TestConfigOptionsConfigureComparison(t *testing.T) {
	t.Parallel()
	cfg := threadchart.DefaultConfig()
	cfg.Title = "Primes"
	cfg.DPI = 72
	c, err := threadchart.NewComparison(balanced, notBalanced, cfg.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Primes" {
		t.Errorf("want title %q, got %q", "Primes", c.Title)
	}
	if c.DPI != 72 {
		t.Errorf("want 72 DPI, got %d", c.DPI)
	}
}
