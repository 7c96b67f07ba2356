package repomanager

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dmitrijs2005/usermgmt/internal/server/repositories/users"
)

// DynamoDBOptions locates the users table.
type DynamoDBOptions struct {
	Region     string
	Endpoint   string // e.g. http://localhost:8000 for DynamoDB Local; empty means AWS
	Table      string
	EmailIndex string
}

// DynamoDBRepositoryManager vends a DynamoDB-backed users repository. The
// table and its email index are provisioned outside the service.
type DynamoDBRepositoryManager struct {
	client     users.DynamoDBAPI
	table      string
	emailIndex string
}

// seams for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
	newDynamoDBClient    = func(cfg aws.Config, optFns ...func(*dynamodb.Options)) users.DynamoDBAPI {
		return dynamodb.NewFromConfig(cfg, optFns...)
	}
)

func NewDynamoDBRepositoryManager(ctx context.Context, opts DynamoDBOptions) (*DynamoDBRepositoryManager, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.Endpoint != "" {
		// local emulators accept any static credentials
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newDynamoDBClient(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &DynamoDBRepositoryManager{client: client, table: opts.Table, emailIndex: opts.EmailIndex}, nil
}

func (m *DynamoDBRepositoryManager) Users() users.Repository {
	return users.NewDynamoDBRepository(m.client, m.table, m.emailIndex)
}

func (m *DynamoDBRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *DynamoDBRepositoryManager) Close() error { return nil }
