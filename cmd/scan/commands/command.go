package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newCommandCmd() *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print the xcodebuild test pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.request(cmd)
			if err != nil {
				return err
			}

			res, err := c.app.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := res.Command
			if tokens {
				out = strings.Join(res.Tokens, "\n")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	addOptionFlags(cmd)
	cmd.Flags().BoolVar(&tokens, "tokens", false, "Print one pipeline token per line")

	return cmd
}
