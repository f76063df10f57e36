package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "insight",
		Short:        "Investment advisor chat relay",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
