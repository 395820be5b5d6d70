package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/c9s/rxkit"
)

var config *rxkit.Config

var rootCmd = &cobra.Command{
	Use:   "rxkit",
	Short: "rxkit content utilities",
	Long:  "rxkit runs the database, bundle, naming and path utilities of the content system",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		config, err = loadConfig(viper.GetString("config"))
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "rxkit.yaml", "config file")

	viper.SetEnvPrefix("RXKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}
}

// loadConfig reads the config file when it exists and falls back to the RXKIT_* env vars
func loadConfig(configFile string) (*rxkit.Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("config file %s does not exist, using env vars", configFile)
			return rxkit.NewConfigFromEnv()
		}

		return nil, err
	}

	return rxkit.LoadConfig(configFile)
}

func main() {
	log.SetFormatter(&prefixed.TextFormatter{})

	// one generator for the whole process
	generator := rxkit.NewSequenceGenerator()
	rootCmd.AddCommand(newNameCmd(generator))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
