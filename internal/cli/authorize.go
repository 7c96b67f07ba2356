package cli

import (
	"encoding/json"

	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
	"github.com/spf13/cobra"
)

func newAuthorizeCmd(s *settings) *cobra.Command {
	var header, resource string

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Print the gateway policy the authorizer would return",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := s.tokenService()
			if err != nil {
				return err
			}

			d := auth.NewGuard(tokens, s.logger()).Authorize(cmd.Context(), header, resource)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d.Response())
		},
	}

	cmd.Flags().StringVar(&header, "header", "", `Authorization header value, e.g. "Bearer <token>"`)
	cmd.Flags().StringVar(&resource, "resource", "", "resource (method ARN) being accessed")
	_ = cmd.MarkFlagRequired("resource")
	return cmd
}
