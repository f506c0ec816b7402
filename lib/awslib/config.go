package awslib

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/stevedore-data/stevedore/lib/config"
)

const sessionLabel = "stevedore-staging"

// BuildConfig assembles the AWS config for staging uploads. Credential precedence:
// an assume-role ARN mints temporary STS credentials from the configured key pair,
// a bare key pair is used statically, and with neither we fall back to the default
// provider chain (env vars, shared config, instance profile).
func BuildConfig(ctx context.Context, settings *config.S3Settings) (aws.Config, error) {
	region := cmp.Or(settings.AwsRegion, os.Getenv("AWS_REGION"))

	switch {
	case settings.RoleARN != "":
		cfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithCredentialsProvider(NewAssumeRoleProvider(settings.AwsAccessKeyID, settings.AwsSecretAccessKey, settings.RoleARN, sessionLabel)),
			awsconfig.WithRegion(region),
		)
		if err != nil {
			return aws.Config{}, fmt.Errorf("failed loading s3 config: %w", err)
		}

		return cfg, nil
	case settings.AwsAccessKeyID != "" && settings.AwsSecretAccessKey != "":
		creds := credentials.NewStaticCredentialsProvider(settings.AwsAccessKeyID, settings.AwsSecretAccessKey, settings.AwsSessionToken)
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithCredentialsProvider(creds), awsconfig.WithRegion(region))
		if err != nil {
			return aws.Config{}, fmt.Errorf("failed loading s3 config: %w", err)
		}

		return cfg, nil
	default:
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			return aws.Config{}, fmt.Errorf("failed loading s3 config: %w", err)
		}

		return cfg, nil
	}
}
