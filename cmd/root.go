package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/ocho86/cmd/dis"
	"github.com/Manu343726/ocho86/cmd/tools"
	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
	"github.com/Manu343726/ocho86/pkg/hw/i8086/loader"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ocho86",
	Short: "A disassembler for the 8086 MOV instruction family",
	Long: `ocho86 decodes raw 8086 machine code binaries back into assembly source,
for the MOV opcode family across its register, immediate and memory addressing
encodings.

This CLI is the entry point for the ocho86 tooling: disassembly, annotated
listing dumps, an interactive listing browser and encoding documentation.`,
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
	RootCmd.AddCommand(dis.DisCmd, tools.ToolsCmd)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ocho86.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write debug logs to this file")

	cobra.OnInitialize(initConfig, initLogging)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("listing.header", listing.DefaultHeader)
	viper.SetDefault("listing.output_suffix", loader.DefaultOutputSuffix)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".ocho86" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ocho86")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogging wires the default slog logger: human readable logs on stderr,
// plus a structured copy into --log-file when requested
func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}
