package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/rxkit"
)

func init() {
	QueryCmd.Flags().StringArrayP("arg", "a", nil, "query argument, repeat for each placeholder")
	QueryCmd.Flags().StringP("file", "f", "", "run every statement of a SQL script file")
	rootCmd.AddCommand(PingCmd)
	rootCmd.AddCommand(QueryCmd)
}

var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "show the database server version",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         ping,
}

var QueryCmd = &cobra.Command{
	Use:   "query [SQL]",
	Short: "run a query and print the result rows",
	Args:  cobra.MaximumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         query,
}

func checkConfig(config *rxkit.Config) error {
	if config == nil {
		return fmt.Errorf("config is not loaded")
	}

	if len(config.Driver) == 0 {
		return fmt.Errorf("driver name can not be empty")
	}

	return nil
}

func openDB() (*rxkit.DB, error) {
	if err := checkConfig(config); err != nil {
		return nil, err
	}

	return rxkit.OpenWithConfig(config)
}

func ping(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	version, err := db.ServerVersion(ctx)
	if err != nil {
		return err
	}

	log.Infof("connected to %s, server version %s", db.DriverName(), version)
	return nil
}

func query(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queryArgs, err := cmd.Flags().GetStringArray("arg")
	if err != nil {
		return err
	}

	scriptFile, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	if (len(args) == 0) == (len(scriptFile) == 0) {
		return fmt.Errorf("either a SQL query or --file must be given")
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	if len(scriptFile) > 0 {
		return runScriptFile(ctx, cmd, db, scriptFile)
	}

	q := &rxkit.RowsQuery{SQL: args[0]}
	for _, a := range queryArgs {
		q.Args = append(q.Args, a)
	}

	if err := db.Run(ctx, q); err != nil {
		return err
	}

	rxkit.RenderQueryResult(cmd.OutOrStdout(), q)
	return nil
}

func runScriptFile(ctx context.Context, cmd *cobra.Command, db *rxkit.DB, scriptFile string) error {
	f, err := os.Open(scriptFile)
	if err != nil {
		return err
	}

	defer f.Close()

	stmts, err := rxkit.ParseScript(f)
	if err != nil {
		return err
	}

	log.Infof("loaded %d statements from %s", len(stmts), scriptFile)

	results, err := rxkit.RunScript(ctx, db, stmts)
	for _, q := range results {
		if len(q.Columns) > 0 {
			rxkit.RenderQueryResult(cmd.OutOrStdout(), q)
		}
	}

	return err
}
