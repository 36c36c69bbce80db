package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/scenario"
)

func newScenarioCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run scripted staking sequences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the builtin scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range scenario.BuiltinNames() {
				file, err := scenario.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, file.Description)
			}
			return nil
		},
	})

	var failOnError bool
	run := &cobra.Command{
		Use:   "run <builtin|file.yaml>",
		Short: "Run a scenario; failed steps are reported and the run continues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			client, err := a.stakingClient()
			if err != nil {
				return err
			}
			compiled, err := scenario.Compile(file, a.config, client)
			if err != nil {
				return err
			}
			reader, err := a.balanceReader()
			if err != nil {
				return err
			}
			h, err := a.ledger()
			if err != nil {
				return err
			}
			runner, err := scenario.NewRunner(h, reader, a.log)
			if err != nil {
				return err
			}

			report := runner.RunScenario(cmd.Context(), compiled)
			if err := report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if failOnError {
				return report.Err()
			}
			return nil
		},
	}
	run.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any step failed")
	cmd.AddCommand(run)
	return cmd
}
