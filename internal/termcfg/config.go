// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package termcfg

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/apparebit/prettypretty-sub000/color"
	"github.com/apparebit/prettypretty-sub000/style"
	"github.com/apparebit/prettypretty-sub000/term"
)

// Settings collects the values a config file may override: the styling
// fidelity forced on a connection regardless of what detection would have
// chosen, which Oklab-family variant ΔE_Ok and hue/lightness matching use,
// the chroma threshold separating gray from chromatic theme entries, and
// the terminal-connection tuning knobs in term.Options.
type Settings struct {
	Fidelity            style.Fidelity
	HasFidelity         bool
	OkVariant           color.OkVariant
	GrayChromaThreshold float64
	Term                term.Options
}

// DefaultSettings returns the settings a connection uses absent any config
// file: no forced fidelity (detection decides), the revised Oklab variant,
// and term.DefaultOptions.
func DefaultSettings() Settings {
	return Settings{
		OkVariant: color.OkRevised,
		Term:      term.DefaultOptions(),
	}
}

func parseFidelity(val string) (style.Fidelity, error) {
	switch val {
	case "plain":
		return style.Plain, nil
	case "nocolor", "no-color":
		return style.NoColor, nil
	case "ansi":
		return style.FidelityAnsi, nil
	case "8bit", "eight-bit":
		return style.Fidelity8Bit, nil
	case "24bit", "truecolor":
		return style.Fidelity24Bit, nil
	case "hires", "hi-res":
		return style.FidelityHiRes, nil
	default:
		return style.Plain, fmt.Errorf("unknown fidelity: %q", val)
	}
}

func parseOkVariant(val string) (color.OkVariant, error) {
	switch val {
	case "original":
		return color.OkOriginal, nil
	case "revised":
		return color.OkRevised, nil
	default:
		return color.OkRevised, fmt.Errorf("unknown ok_variant: %q", val)
	}
}

func parseMode(val string) (term.Mode, error) {
	switch val {
	case "charred":
		return term.ModeCharred, nil
	case "cooked":
		return term.ModeCooked, nil
	case "rare", "cbreak":
		return term.ModeRare, nil
	case "raw":
		return term.ModeRaw, nil
	default:
		return term.ModeRare, fmt.Errorf("unknown terminal_mode: %q", val)
	}
}

// handleLine applies one KEY value pair to self, matching the recognized
// keys: force_fidelity, ok_variant, gray_chroma_threshold, terminal_mode,
// query_timeout_ms, read_buffer_size, write_buffer_size, verbose.
func (self *Settings) handleLine(key, val string) error {
	switch key {
	case "force_fidelity":
		f, err := parseFidelity(val)
		if err != nil {
			return err
		}
		self.Fidelity = f
		self.HasFidelity = true
	case "ok_variant":
		v, err := parseOkVariant(val)
		if err != nil {
			return err
		}
		self.OkVariant = v
	case "gray_chroma_threshold":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid gray_chroma_threshold: %w", err)
		}
		self.GrayChromaThreshold = f
	case "terminal_mode":
		m, err := parseMode(val)
		if err != nil {
			return err
		}
		self.Term.Mode = m
	case "query_timeout_ms":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid query_timeout_ms: %w", err)
		}
		self.Term.Timeout = time.Duration(n) * time.Millisecond
	case "read_buffer_size":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid read_buffer_size: %w", err)
		}
		self.Term.ReadBufferSize = n
	case "write_buffer_size":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid write_buffer_size: %w", err)
		}
		self.Term.WriteBufferSize = n
	case "verbose":
		self.Term.Verbose = StringToBool(val)
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

// Load reads settings from the given files in order, later files and
// overrides taking precedence, starting from DefaultSettings. Missing
// files are skipped, mirroring ParseFiles.
func Load(files []string, overrides []string) (Settings, []ConfigLine, error) {
	settings := DefaultSettings()
	parser := ConfigParser{LineHandler: settings.handleLine}
	if err := parser.ParseFiles(files...); err != nil {
		return settings, parser.BadLines(), err
	}
	if len(overrides) > 0 {
		if err := parser.ParseOverrides(overrides...); err != nil {
			return settings, parser.BadLines(), err
		}
	}
	return settings, parser.BadLines(), nil
}

// Apply pushes the gray-chroma-threshold override into the style package's
// package-level hue/lightness matcher. The fidelity, Ok variant, and
// term.Options fields are consumed directly by callers that build a
// Translator or open a Connection; they have no global state to push into.
func (self Settings) Apply() {
	if self.GrayChromaThreshold > 0 {
		style.SetGrayChromaThreshold(self.GrayChromaThreshold)
	}
}

var configDirOnce func() string

// ConfigDir resolves this module's configuration directory following the
// same precedence as XDG base directories: PRETTYPRETTY_CONFIG_DIRECTORY
// overrides everything; otherwise XDG_CONFIG_HOME (or ~/.config) joined
// with "prettypretty", falling back to ~/Library/Preferences on macOS and
// walking XDG_CONFIG_DIRS for an existing directory before settling on the
// XDG_CONFIG_HOME candidate.
func ConfigDir() string {
	if configDirOnce == nil {
		configDirOnce = sync.OnceValue(computeConfigDir)
	}
	return configDirOnce()
}

func computeConfigDir() string {
	if d := envOr("PRETTYPRETTY_CONFIG_DIRECTORY", ""); d != "" {
		return d
	}

	home := envOr("HOME", "")
	candidate := joinXDG(envOr("XDG_CONFIG_HOME", ""), home, "prettypretty")

	if dirExists(candidate) {
		return candidate
	}

	if runtime.GOOS == "darwin" {
		if alt := joinPath(home, "Library", "Preferences", "prettypretty"); dirExists(alt) {
			return alt
		}
	}

	for _, dir := range splitPathList(envOr("XDG_CONFIG_DIRS", "")) {
		alt := joinPath(dir, "prettypretty")
		if dirExists(alt) {
			return alt
		}
	}

	return candidate
}
