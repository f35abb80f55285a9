package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/reveal/config"
)

func newSampleConfigCommand() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "sample-config [path]",
		Short: "Write a commented sample config file",
		Long: `Writes the sample configuration to path, or to the user config
directory when no path is given. Existing files are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				def, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = def
			}

			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print instead of writing a file")
	return cmd
}
