package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/intcode"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode.cli")

// app holds the command tree and the state shared by its subcommands.
type app struct {
	root *cobra.Command

	in     io.Reader
	out    *bufio.Writer
	errOut io.Writer

	// Persistent flags
	verbose    int
	logFile    string
	dir        string
	noManifest bool
	source     string
	trace      bool

	cfg *manifest.Manifest
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{
		in:     in,
		out:    bufio.NewWriter(out),
		errOut: errOut,
	}

	a.root = &cobra.Command{
		Use:   "intcode",
		Short: "Run Intcode programs and amplifier networks.",
		Long: `Run Intcode programs and amplifier networks. ` +
			`Settings are read from the nearest intcode.toml; flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	a.root.SetIn(in)
	a.root.SetOut(a.out)
	a.root.SetErr(errOut)

	flags := a.root.PersistentFlags()
	flags.CountVarP(&a.verbose, "verbose", "v", "raise log verbosity (repeatable)")
	flags.StringVar(&a.logFile, "log", "", "log to file instead of stderr")
	flags.StringVarP(&a.dir, "dir", "C", ".", "directory to search for intcode.toml")
	flags.BoolVar(&a.noManifest, "no-manifest", false, "ignore intcode.toml")
	flags.StringVarP(&a.source, "source", "e", "", "inline program source (comma-separated)")
	flags.BoolVar(&a.trace, "trace", false, "log every executed instruction")

	a.root.AddCommand(
		a.newRunCmd(),
		a.newAmpCmd(),
		a.newSearchCmd(),
		a.newNounVerbCmd(),
		a.newDisasmCmd(),
	)
	return a
}

// setup loads the manifest and configures logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if !a.noManifest {
		m, err := manifest.FindAndLoad(a.dir)
		if err != nil {
			return err
		}
		a.cfg = m
	}
	if a.cfg == nil {
		a.cfg = &manifest.Manifest{Log: manifest.LogConfig{Verbosity: manifest.DefaultVerbosity}}
	}

	verbosity := a.cfg.Log.Verbosity + a.verbose
	path := a.cfg.LogPath()
	if a.logFile != "" {
		path = a.logFile
	}
	if path != "" {
		commonlog.Configure(verbosity, &path)
	} else {
		commonlog.Configure(verbosity, nil)
	}

	if a.cfg.Dir != "" {
		log.Debugf("using %s", filepath.Join(a.cfg.Dir, manifest.FileName))
	}
	return nil
}

// program resolves the program from, in order: a file argument, --source,
// then the manifest. It also returns a display name.
func (a *app) program(args []string) ([]int64, string, error) {
	switch {
	case len(args) > 0:
		program, err := intcode.LoadProgram(args[0])
		return program, filepath.Base(args[0]), err
	case a.source != "":
		program, err := intcode.ParseProgram(a.source)
		return program, "inline", err
	default:
		program, err := a.cfg.LoadProgram()
		if err != nil {
			return nil, "", fmt.Errorf("no program given: %w", err)
		}
		name := "inline"
		if p := a.cfg.ProgramPath(); p != "" {
			name = filepath.Base(p)
		}
		return program, name, nil
	}
}

func (a *app) tracing() bool {
	return a.trace || a.cfg.Processor.Trace
}

func (a *app) flush() {
	if err := a.out.Flush(); err != nil {
		fmt.Fprintf(a.errOut, "Error flushing output: %v\n", err)
	}
}
