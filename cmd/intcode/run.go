package main

import (
	"errors"
	"fmt"

	"github.com/chazu/intcode/pkg/intcode"
	"github.com/spf13/cobra"
)

// ---------------------------------------------------------------------------
// intcode run: execute a single program
// ---------------------------------------------------------------------------

func (a *app) newRunCmd() *cobra.Command {
	var (
		inputs      []int64
		interactive bool
		peek        []int
		set         map[string]int64
	)

	cmd := &cobra.Command{
		Use:   "run [program-file]",
		Short: "Run a program and print its outputs, one per line.",
		Example: `  intcode run input.txt -i 1
  intcode run -e 3,9,8,9,10,9,4,9,99,-1,8 -i 8
  intcode run input.txt --interactive
  intcode run day2.txt --set 1=12,2=2 --peek 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, name, err := a.program(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("input") {
				inputs = a.cfg.Program.Inputs
			}
			if !cmd.Flags().Changed("interactive") {
				interactive = a.cfg.Processor.Interactive
			}
			if !cmd.Flags().Changed("set") {
				set = a.cfg.Program.Set
			}
			patches, err := intcode.ParsePatches(set)
			if err != nil {
				return fmt.Errorf("--set: %w", err)
			}

			opts := []intcode.Option{intcode.WithName(name), intcode.WithInputs(inputs...)}
			for _, pt := range patches {
				opts = append(opts, pt.Option())
			}
			if interactive {
				opts = append(opts, intcode.WithInteractive(intcode.NewPromptInput(a.in, cmd.ErrOrStderr())))
			}
			if a.tracing() {
				opts = append(opts, intcode.WithTrace())
			}

			p := intcode.New(program, opts...)
			state, runErr := p.Run()

			for _, v := range p.Outputs() {
				fmt.Fprintln(a.out, v)
			}
			for _, addr := range peek {
				fmt.Fprintf(a.out, "mem[%d] = %s\n", addr, p.Peek(addr))
			}

			if runErr != nil {
				if errors.Is(runErr, intcode.ErrInputUnavailable) {
					return fmt.Errorf("%s: input exhausted at ip %d", name, p.IP())
				}
				return runErr
			}
			log.Infof("%s: %s after %d steps", name, state, p.Steps())
			if n := p.PendingInputs(); n > 0 {
				log.Warningf("%s: %d inputs left unread", name, n)
			}
			if !state.IsTerminal() {
				return fmt.Errorf("%s: program is waiting for input at ip %d", name, p.IP())
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVarP(&inputs, "input", "i", nil, "input values (comma-separated or repeated)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for input when the queue is empty")
	cmd.Flags().IntSliceVar(&peek, "peek", nil, "print memory at these addresses after the run")
	cmd.Flags().StringToInt64Var(&set, "set", nil, "overwrite memory before the run (addr=value, comma-separated or repeated)")
	return cmd
}

// ---------------------------------------------------------------------------
// intcode nounverb: find the inputs producing a target
// ---------------------------------------------------------------------------

func (a *app) newNounVerbCmd() *cobra.Command {
	var target int64

	cmd := &cobra.Command{
		Use:   "nounverb [program-file]",
		Short: "Find the noun (mem[1]) and verb (mem[2]) that leave target in mem[0].",
		Example: `  intcode nounverb day2.txt --target 19690720`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, _, err := a.program(args)
			if err != nil {
				return err
			}
			var opts []intcode.Option
			if a.tracing() {
				opts = append(opts, intcode.WithTrace())
			}
			noun, verb, err := intcode.NounVerb(program, target, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%d %d %d\n", noun, verb, 100*noun+verb)
			return nil
		},
	}
	cmd.Flags().Int64Var(&target, "target", 0, "value wanted at address 0")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// ---------------------------------------------------------------------------
// intcode disasm: print a listing
// ---------------------------------------------------------------------------

func (a *app) newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [program-file]",
		Short: "Print a disassembly listing of a program.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, name, err := a.program(args)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, intcode.DisassembleWithName(program, name))
			return nil
		},
	}
}
