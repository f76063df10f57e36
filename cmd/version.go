package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/insight-advisor-bridge/internal/version"
)

func newVersionCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				s, err := info.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case "short":
				fmt.Fprintln(out, info.String())
			case "text":
				fmt.Fprintln(out, info.Text())
			default:
				return fmt.Errorf("unknown output format %q (text, json, short)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, short)")
	return cmd
}
