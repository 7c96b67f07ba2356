package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/flagx"
)

// parseFlags overrides Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-k string   JWT signing key
//	-t int      token validity, seconds
//	-b string   storage backend: dynamodb, postgres or memory
//	-d string   PostgreSQL DSN
//	-l string   log level
//
// Only these flags are picked out of args, so -c/-config and flags owned by
// other components do not break parsing.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-t", "-b", "-d", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.SigningKey, "k", config.SigningKey, "JWT signing key")
	ttl := fs.Int64("t", int64(config.TokenTTL/time.Second), "token validity (in seconds)")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.TokenTTL = time.Duration(*ttl) * time.Second
	return nil
}
