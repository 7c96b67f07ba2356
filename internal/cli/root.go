// Package cli implements usermgmt, an operator tool for hashing passwords,
// minting and checking tokens and dry-running the authorization guard.
package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings resolves shared options from flags first, then the environment
// variables the server reads.
type settings struct {
	v *viper.Viper
}

func (s *settings) signingKey() string     { return s.v.GetString("signing_key") }
func (s *settings) ttl() time.Duration     { return time.Duration(s.v.GetInt64("token_ttl_seconds")) * time.Second }
func (s *settings) hashCost() int          { return s.v.GetInt("password_hash_cost") }
func (s *settings) logger() logging.Logger { return logging.Nop() }

func (s *settings) tokenService() (*auth.TokenService, error) {
	if s.signingKey() == "" {
		return nil, common.NewConfigurationError("signing key is not set (--key or JWT_SECRET)")
	}
	if s.ttl() <= 0 {
		return nil, common.NewConfigurationError(fmt.Sprintf("token ttl must be positive, got %s", s.ttl()))
	}
	return auth.NewTokenService(s.signingKey(), s.ttl()), nil
}

// NewRootCmd builds the usermgmt command tree.
func NewRootCmd() *cobra.Command {
	s := &settings{v: viper.New()}

	root := &cobra.Command{
		Use:           "usermgmt",
		Short:         "usermgmt - user-account service admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("key", "", "JWT signing key (default $JWT_SECRET)")
	pf.Int64("ttl", int64(auth.DefaultTokenTTL/time.Second), "token validity, seconds (default $TOKEN_TTL_SECONDS)")
	pf.Int("cost", auth.DefaultHashCost, "bcrypt cost (default $PASSWORD_HASH_COST)")

	_ = s.v.BindPFlag("signing_key", pf.Lookup("key"))
	_ = s.v.BindPFlag("token_ttl_seconds", pf.Lookup("ttl"))
	_ = s.v.BindPFlag("password_hash_cost", pf.Lookup("cost"))
	_ = s.v.BindEnv("signing_key", "JWT_SECRET", "SIGNING_KEY")
	_ = s.v.BindEnv("token_ttl_seconds", "TOKEN_TTL_SECONDS")
	_ = s.v.BindEnv("password_hash_cost", "PASSWORD_HASH_COST")

	root.AddCommand(newHashPasswordCmd(s))
	root.AddCommand(newComparePasswordCmd(s))
	root.AddCommand(newTokenCmd(s))
	root.AddCommand(newAuthorizeCmd(s))

	return root
}

// Execute runs the command tree with args.
func Execute(args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
