package main

import (
	"fmt"

	"github.com/chazu/intcode/pkg/amplifier"
	"github.com/spf13/cobra"
)

// networkFlags are shared by amp and search.
type networkFlags struct {
	phases   []int64
	feedback bool
}

func (f *networkFlags) register(cmd *cobra.Command, phaseHelp string) {
	cmd.Flags().Int64SliceVarP(&f.phases, "phases", "p", nil, phaseHelp)
	cmd.Flags().BoolVar(&f.feedback, "feedback", false, "loop the last amplifier back into the first")
}

// resolveNetwork applies the flags that were given over the manifest and
// returns the phases and network options to use.
func (a *app) resolveNetwork(cmd *cobra.Command, f *networkFlags) ([]int64, []amplifier.Option) {
	if cmd.Flags().Changed("feedback") {
		a.cfg.Network.Feedback = f.feedback
	}
	phases := a.cfg.Phases()
	if cmd.Flags().Changed("phases") {
		phases = f.phases
	}

	var opts []amplifier.Option
	if a.cfg.Network.Feedback {
		opts = append(opts, amplifier.WithFeedback())
	}
	if a.tracing() {
		opts = append(opts, amplifier.WithTrace())
	}
	return phases, opts
}

func (a *app) newAmpCmd() *cobra.Command {
	var f networkFlags

	cmd := &cobra.Command{
		Use:   "amp [program-file]",
		Short: "Run an amplifier network with the given phase settings.",
		Example: `  intcode amp input.txt -p 4,3,2,1,0
  intcode amp input.txt -p 9,8,7,6,5 --feedback`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, _, err := a.program(args)
			if err != nil {
				return err
			}
			phases, opts := a.resolveNetwork(cmd, &f)
			n, err := amplifier.New(program, phases, opts...)
			if err != nil {
				return err
			}
			signal, err := n.Run()
			if err != nil {
				return fmt.Errorf("network %s: %w", n.ID(), err)
			}
			fmt.Fprintln(a.out, signal)
			return nil
		},
	}
	f.register(cmd, "phase setting per amplifier, in chain order")
	return cmd
}

func (a *app) newSearchCmd() *cobra.Command {
	var f networkFlags

	cmd := &cobra.Command{
		Use:   "search [program-file]",
		Short: "Find the phase permutation giving the highest signal.",
		Example: `  intcode search input.txt
  intcode search input.txt --feedback`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, _, err := a.program(args)
			if err != nil {
				return err
			}
			phases, opts := a.resolveNetwork(cmd, &f)
			res, err := amplifier.Search(program, phases, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, res)
			return nil
		},
	}
	f.register(cmd, "phase values to permute (default 0-4, or 5-9 with --feedback)")
	return cmd
}
