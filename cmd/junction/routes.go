package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Long: `Bind the configured static directory and print the resulting routes
in registration order, without starting the server.

Examples:
  junction routes
  junction routes --static-dir ./dist --static-prefix /assets`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(_ *cobra.Command, _ []string) error {
	r, err := buildRouter(slog.Default())
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, route := range r.Routes() {
		fmt.Fprintf(w, "%s\t%s\n", route.Method, route.Path)
	}
	return w.Flush()
}
