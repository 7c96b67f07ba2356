package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type claimsView struct {
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

func newTokenCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and verify access tokens",
	}
	cmd.AddCommand(newTokenIssueCmd(s), newTokenVerifyCmd(s))
	return cmd
}

func newTokenIssueCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "issue <subject>",
		Short: "Issue a token for a user id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := s.tokenService()
			if err != nil {
				return err
			}

			tok, err := tokens.Issue(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
}

func newTokenVerifyCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := s.tokenService()
			if err != nil {
				return err
			}

			claims, err := tokens.Verify(args[0])
			if err != nil {
				return err
			}

			view := claimsView{Subject: claims.SubjectID()}
			if claims.IssuedAt != nil {
				view.IssuedAt = claims.IssuedAt.Time.UTC()
			}
			if claims.ExpiresAt != nil {
				view.ExpiresAt = claims.ExpiresAt.Time.UTC()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}
}
