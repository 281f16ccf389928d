package database

import (
	"context"
	"log"
	"payment_gateway/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. A non-empty DYNAMODB_ENDPOINT points
// it at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, awsCfg config.AWS, ddbCfg config.DynamoDB) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, awsCfg)
	if err != nil {
		log.Printf("[database][dynamodb] failed to create config err=%v", err)
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if ddbCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(ddbCfg.Endpoint)
		}
	})
	log.Printf("[database][dynamodb] client initialized region=%s endpoint=%s", awsCfg.Region, ddbCfg.Endpoint)
	return client, nil
}

func NewDynamoDBConfig(ctx context.Context, awsCfg config.AWS) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(awsCfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
