package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("password does not match")

func newHashPasswordCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password and print its bcrypt digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := auth.NewPasswordHasher(s.hashCost())
			if err != nil {
				return err
			}

			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
			if err != nil {
				return err
			}

			digest, err := hasher.Hash(pw)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), digest)
			return err
		},
	}
}

func newComparePasswordCmd(s *settings) *cobra.Command {
	var digest string

	cmd := &cobra.Command{
		Use:   "compare-password",
		Short: "Check a password against a bcrypt digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := auth.NewPasswordHasher(s.hashCost())
			if err != nil {
				return err
			}

			pw, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
			if err != nil {
				return err
			}

			ok, err := hasher.Compare(pw, digest)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return errPasswordMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "match")
			return err
		},
	}

	cmd.Flags().StringVar(&digest, "digest", "", "bcrypt digest to compare against")
	_ = cmd.MarkFlagRequired("digest")
	return cmd
}
