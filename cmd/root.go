package cmd

import (
	"fmt"
	"os"

	"github.com/Manu343726/sim8086/cmd/decode"
	"github.com/Manu343726/sim8086/cmd/settings"
	"github.com/Manu343726/sim8086/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sim8086",
	Short: "An 8086 machine code decoder",
	Long: `sim8086 decodes 8086 machine code into assembly listings.

Register/memory to/from register moves and immediate to register moves are supported.
Listings start with a "bits 16" directive so they can be reassembled with nasm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(viper.GetViper())
		if err != nil {
			return err
		}

		return setupLogging(s)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, decode.DecodeCmd, decode.ExplainCmd, decode.ReplCmd, decode.ViewCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sim8086.yaml)")
	flags.Bool("signed", true, "Render displacements and immediates as signed values")
	flags.String("on-unsupported", "abort", "What to do with unsupported opcodes: abort or skip")
	flags.String("color", "auto", "Colorize output: auto, always or never")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Also write JSON logs to this file")

	cobra.CheckErr(viper.BindPFlag(settings.KeySigned, flags.Lookup("signed")))
	cobra.CheckErr(viper.BindPFlag(settings.KeyOnUnsupported, flags.Lookup("on-unsupported")))
	cobra.CheckErr(viper.BindPFlag(settings.KeyColor, flags.Lookup("color")))
	cobra.CheckErr(viper.BindPFlag(settings.KeyLogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(settings.KeyLogFile, flags.Lookup("log-file")))

	settings.SetDefaults(viper.GetViper())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sim8086" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sim8086")
	}

	settings.BindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
