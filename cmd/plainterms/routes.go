package main

import (
	"github.com/spf13/cobra"

	"github.com/plainterms/plainterms/internal/site"
)

// NewRoutesCmd creates the routes command, which prints the detail-page
// routes discovery would hand to a build.
func NewRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the discovered detail-page routes",
		RunE:  runRoutes,
	}
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	a, cleanup, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	routes := site.DiscoverRoutes(cmd.Context(), a.db, a.log)
	for _, slug := range routes.Slugs {
		cmd.Println("/websites/" + slug)
	}
	cmd.Printf("%d routes\n", len(routes.Slugs))
	return nil
}
