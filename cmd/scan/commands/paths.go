package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the log, archive and result bundle paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.request(cmd)
			if err != nil {
				return err
			}

			paths, err := c.app.Paths(cmd.Context(), req)
			if err != nil {
				return err
			}

			return writeYAML(cmd, paths)
		},
	}

	addOptionFlags(cmd)

	return cmd
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
