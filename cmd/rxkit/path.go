package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/rxkit"
)

func init() {
	PathCmd.AddCommand(PathCheckCmd)
	PathCmd.AddCommand(PathNormalizeCmd)
	rootCmd.AddCommand(PathCmd)
	rootCmd.AddCommand(SortCmd)
}

var PathCmd = &cobra.Command{
	Use:   "path",
	Short: "content path helpers",
}

var PathCheckCmd = &cobra.Command{
	Use:   "check PATH",
	Short: "report whether the path is under " + rxkit.SitesRoot,
	Args:  cobra.ExactArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		under, err := rxkit.IsUnderSitesRoot(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), under)
		return nil
	},
}

var PathNormalizeCmd = &cobra.Command{
	Use:   "normalize PATH",
	Short: "replace backslashes with forward slashes",
	Args:  cobra.ExactArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), rxkit.NormalizeSeparators(args[0]))
		return nil
	},
}

var SortCmd = &cobra.Command{
	Use:   "sort VALUE...",
	Short: "sort values case-insensitively",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		comparator, err := rxkit.NewStringComparator(rxkit.SortCaseInsensitiveAsc)
		if err != nil {
			return err
		}

		values := append([]string(nil), args...)
		comparator.Sort(values)
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}
