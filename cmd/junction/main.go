package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// rootCmd is assigned in init rather than by a package-level initializer:
// its PersistentPreRunE closure mentions setupLogging, which mentions
// rootCmd.Use, and that reference cycle is rejected by the compiler's
// initialization-order analysis.
var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Version: version,
		Use:     "junction",
		Short:   "HTTP server with an ordered route table and static asset binding",
		Long: `Junction serves a directory tree over plain HTTP. Every file becomes
a GET route under the configured prefix, index.html files fold onto their
parent paths, and content types come from the file extension.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			readConfig(cmd)
			setupLogging()
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("static-dir", "", "directory to bind (default: ./public, env: JUNCTION_STATIC_DIR)")
	rootCmd.PersistentFlags().String("static-prefix", "", "route prefix for bound files (default: /, env: JUNCTION_STATIC_PREFIX)")

	_ = viper.BindPFlag("static.dir", rootCmd.PersistentFlags().Lookup("static-dir"))
	_ = viper.BindPFlag("static.prefix", rootCmd.PersistentFlags().Lookup("static-prefix"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
