package commands

import "github.com/spf13/cobra"

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.request(cmd)
			if err != nil {
				return err
			}

			opts, err := c.app.Options(cmd.Context(), req)
			if err != nil {
				return err
			}

			return writeYAML(cmd, opts)
		},
	}

	addOptionFlags(cmd)

	return cmd
}
