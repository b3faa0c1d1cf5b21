package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions overrides the environment for the lock table client.
// Empty fields fall back to AWS_REGION and DYNAMODB_ENDPOINT.
type DynamoDBOptions struct {
	Region   string
	Endpoint string
}

func (o DynamoDBOptions) resolve() DynamoDBOptions {
	if o.Region == "" {
		o.Region = getenvDefault("AWS_REGION", "us-east-1")
	}
	if o.Endpoint == "" {
		o.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	}
	return o
}

// ConnectDynamoDB builds the client behind the dynamodb import lease locks.
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY default to "local" so a
// dynamodb-local endpoint works without real credentials.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	opts = opts.resolve()
	cfg, err := loadAWSConfig(ctx, opts.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	slog.InfoContext(ctx, "[lock][dynamodb] client configured", "region", opts.Region, "endpoint", opts.Endpoint)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
