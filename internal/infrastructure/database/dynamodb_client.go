package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"business_manager/internal/config"
)

// ConnectDynamoDB creates a DynamoDB client from cfg. A non-empty
// DynamoDBEndpoint points the client at a local DynamoDB.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create dynamodb config")
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
	logger.Info().
		Str("region", cfg.AWSRegion).
		Str("endpoint", cfg.DynamoDBEndpoint).
		Msg("dynamodb client initialized")
	return client, nil
}

func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}
