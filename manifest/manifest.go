// Package manifest handles intcode.toml run configuration.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/chazu/intcode/pkg/amplifier"
	"github.com/chazu/intcode/pkg/intcode"
)

// FileName is the manifest file looked up by Load and FindAndLoad.
const FileName = "intcode.toml"

// DefaultVerbosity applies when [log] does not set verbosity.
const DefaultVerbosity = 1

// ErrNoProgram is returned by LoadProgram when neither a path nor inline source
// is configured.
var ErrNoProgram = errors.New("no program configured")

// Manifest represents an intcode.toml configuration.
type Manifest struct {
	Program   ProgramConfig   `toml:"program"`
	Processor ProcessorConfig `toml:"processor"`
	Network   NetworkConfig   `toml:"network"`
	Log       LogConfig       `toml:"log"`

	// Dir is the directory containing the intcode.toml file (set at load time).
	Dir string `toml:"-"`
}

// ProgramConfig selects the program and its initial inputs.
type ProgramConfig struct {
	Path   string  `toml:"path"`
	Source string  `toml:"source"`
	Inputs []int64 `toml:"inputs"`

	// Set overwrites words before the run, keyed by decimal address.
	Set map[string]int64 `toml:"set"`
}

// ProcessorConfig configures single-processor runs.
type ProcessorConfig struct {
	Interactive bool `toml:"interactive"`
	Trace       bool `toml:"trace"`
}

// NetworkConfig configures amplifier runs and searches.
type NetworkConfig struct {
	Phases   []int64 `toml:"phases"`
	Feedback bool    `toml:"feedback"`
}

// LogConfig configures the log backend.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Load parses an intcode.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if !md.IsDefined("log", "verbosity") {
		m.Log.Verbosity = DefaultVerbosity
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// ProgramPath returns the absolute path of the configured program file, or
// "" when the program is given inline.
func (m *Manifest) ProgramPath() string {
	if m.Program.Path == "" {
		return ""
	}
	if filepath.IsAbs(m.Program.Path) {
		return m.Program.Path
	}
	return filepath.Join(m.Dir, m.Program.Path)
}

// LoadProgram returns the configured program, parsing the inline source or
// loading the file relative to the manifest directory.
func (m *Manifest) LoadProgram() ([]int64, error) {
	switch {
	case m.Program.Source != "" && m.Program.Path != "":
		return nil, fmt.Errorf("%s: [program] sets both path and source", FileName)
	case m.Program.Source != "":
		return intcode.ParseProgram(m.Program.Source)
	case m.Program.Path != "":
		return intcode.LoadProgram(m.ProgramPath())
	default:
		return nil, ErrNoProgram
	}
}

// Patches returns the [program.set] words in address order.
func (m *Manifest) Patches() ([]intcode.Patch, error) {
	patches, err := intcode.ParsePatches(m.Program.Set)
	if err != nil {
		return nil, fmt.Errorf("%s: [program.set]: %w", FileName, err)
	}
	return patches, nil
}

// Phases returns the configured phase settings, or the default set for the
// configured network mode.
func (m *Manifest) Phases() []int64 {
	if len(m.Network.Phases) > 0 {
		return m.Network.Phases
	}
	return amplifier.DefaultPhases(m.Network.Feedback)
}

// LogPath returns the log file path relative to the manifest directory, or ""
// for stderr.
func (m *Manifest) LogPath() string {
	if m.Log.File == "" || filepath.IsAbs(m.Log.File) {
		return m.Log.File
	}
	return filepath.Join(m.Dir, m.Log.File)
}
