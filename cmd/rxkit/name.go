package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/rxkit"
)

func newNameCmd(generator *rxkit.SequenceGenerator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [PREFIX]",
		Short: "generate unique names",
		Args:  cobra.MaximumNArgs(1),

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}

			prefix := config.NamePrefix
			if len(args) > 0 {
				prefix = args[0]
			}

			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), generator.Next(prefix))
			}

			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "number of names to generate")
	return cmd
}
