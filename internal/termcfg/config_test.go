package termcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apparebit/prettypretty-sub000/color"
	"github.com/apparebit/prettypretty-sub000/style"
)

func TestLoadDefaults(t *testing.T) {
	s, bad, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(bad) != 0 {
		t.Fatalf("Load() bad lines = %v", bad)
	}
	if s.HasFidelity {
		t.Error("HasFidelity = true, want false without a config file")
	}
	if s.OkVariant != color.OkRevised {
		t.Errorf("OkVariant = %v, want OkRevised", s.OkVariant)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prettypretty.conf")
	contents := "force_fidelity 8bit\nok_variant original\nquery_timeout_ms 250\nread_buffer_size 512\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s, bad, err := Load([]string{path}, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(bad) != 0 {
		t.Fatalf("Load() bad lines = %v", bad)
	}
	if !s.HasFidelity || s.Fidelity != style.Fidelity8Bit {
		t.Errorf("Fidelity = %v (has=%v), want Fidelity8Bit", s.Fidelity, s.HasFidelity)
	}
	if s.OkVariant != color.OkOriginal {
		t.Errorf("OkVariant = %v, want OkOriginal", s.OkVariant)
	}
	if s.Term.ReadBufferSize != 512 {
		t.Errorf("ReadBufferSize = %d, want 512", s.Term.ReadBufferSize)
	}
}

func TestLoadBadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prettypretty.conf")
	if err := os.WriteFile(path, []byte("force_fidelity bogus\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, bad, err := Load([]string{path}, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(bad) != 1 {
		t.Fatalf("bad lines = %v, want 1 entry", bad)
	}
}

func TestLoadOverrides(t *testing.T) {
	s, bad, err := Load(nil, []string{"gray_chroma_threshold 0.1"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(bad) != 0 {
		t.Fatalf("Load() bad lines = %v", bad)
	}
	if s.GrayChromaThreshold != 0.1 {
		t.Errorf("GrayChromaThreshold = %v, want 0.1", s.GrayChromaThreshold)
	}
}

func TestConfigDirHonorsOverride(t *testing.T) {
	t.Setenv("PRETTYPRETTY_CONFIG_DIRECTORY", "/tmp/pp-config-test")
	configDirOnce = nil
	if got := ConfigDir(); got != "/tmp/pp-config-test" {
		t.Errorf("ConfigDir() = %q, want override", got)
	}
	configDirOnce = nil
}
