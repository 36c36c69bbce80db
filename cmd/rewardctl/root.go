package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rewardctl",
		Short:         "Manage the Hedera reward distribution deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	addPersistentFlags(root.PersistentFlags())

	root.AddCommand(
		newAddressCommand(a),
		newTokenCommand(a),
		newBalanceCommand(a),
		newContractCommand(a),
		newScenarioCommand(a),
		newAccountCommand(a),
	)
	return root
}

// run executes one command line. The app is closed whether or not the command
// fails; cobra skips post-run hooks after an error.
func run(ctx context.Context, a *app, args []string) error {
	defer a.close()
	root := newRootCommand(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
