package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/rxkit"
)

func init() {
	BundleShowCmd.Flags().String("locale", "", "locale of the bundle, e.g. fr_CA")
	BundleShowCmd.Flags().Bool("db", false, "read the bundle from the database instead of the bundle directory")

	BundleImportCmd.Flags().String("name", "", "bundle name")
	BundleImportCmd.Flags().String("locale", "", "bundle locale, empty for the root bundle")

	BundleCmd.AddCommand(BundleShowCmd)
	BundleCmd.AddCommand(BundleImportCmd)
	rootCmd.AddCommand(BundleCmd)
}

var BundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "resource bundle commands",
}

var BundleShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "load a bundle into a table and print it",
	Args:  cobra.ExactArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         bundleShow,
}

var BundleImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "import a .properties or .yaml bundle file into the database",
	Args:  cobra.ExactArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,
	RunE:         bundleImport,
}

func bundleShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	localeName, err := cmd.Flags().GetString("locale")
	if err != nil {
		return err
	}

	if localeName == "" {
		localeName = config.Locale
	}

	locale, err := rxkit.ParseLocale(localeName)
	if err != nil {
		return err
	}

	fromDB, err := cmd.Flags().GetBool("db")
	if err != nil {
		return err
	}

	loader := &rxkit.BundleLoader{}
	if fromDB {
		db, err := openDB()
		if err != nil {
			return err
		}

		defer db.Close()
		loader.Store = rxkit.NewDBBundleStore(db, config.BundleTable)
	} else {
		if len(config.BundleDir) == 0 {
			return fmt.Errorf("bundle directory is not configured")
		}

		loader.Store = rxkit.NewDirBundleStore(config.BundleDir)
	}

	table := rxkit.Table{}
	if err := loader.Load(ctx, args[0], locale, table); err != nil {
		return err
	}

	rxkit.RenderBundleTable(cmd.OutOrStdout(), fmt.Sprintf("%s [%s]", args[0], locale), table)
	return nil
}

func bundleImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}

	if len(name) == 0 {
		return fmt.Errorf("bundle name can not be empty")
	}

	localeName, err := cmd.Flags().GetString("locale")
	if err != nil {
		return err
	}

	// validate the locale before touching the database
	locale, err := rxkit.ParseLocale(localeName)
	if err != nil {
		return err
	}

	suffix := rxkit.LocaleSuffix(locale)

	entries, err := rxkit.ReadBundleFile(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	store := rxkit.NewDBBundleStore(db, config.BundleTable)
	if err := store.Touch(ctx); err != nil {
		return err
	}

	bundle := &rxkit.Bundle{Name: name, Locale: suffix, Entries: entries}
	if err := store.PutBundle(ctx, bundle); err != nil {
		return err
	}

	log.Infof("imported %d entries into bundle %s[%s]", len(entries), name, suffix)
	return nil
}
