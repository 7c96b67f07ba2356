package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/server/auth"
	"github.com/dmitrijs2005/usermgmt/internal/server/authorizer"
	"github.com/dmitrijs2005/usermgmt/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		logging.New(os.Stderr, logging.Options{}).Error(context.Background(), "config error", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Options{Backend: cfg.LogBackend, Level: cfg.LogLevel, Format: cfg.LogFormat})
	tokens := auth.NewTokenService(cfg.SigningKey, cfg.TokenTTL)

	lambda.Start(authorizer.NewHandler(auth.NewGuard(tokens, logger)).Handle)
}
