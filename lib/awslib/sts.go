package awslib

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const expirationBuffer = 10 * time.Minute

// AssumeRoleProvider satisfies [aws.CredentialsProvider] by assuming a role with a
// base key pair and caching the temporary credentials until they are close to expiry.
type AssumeRoleProvider struct {
	mu    sync.Mutex
	creds aws.Credentials

	// Arguments to generate the credentials:
	accessKeyID     string
	secretAccessKey string
	roleARN         string
	sessionLabel    string
}

func NewAssumeRoleProvider(accessKeyID, secretAccessKey, roleARN, sessionLabel string) *AssumeRoleProvider {
	return &AssumeRoleProvider{
		accessKeyID:     accessKeyID,
		secretAccessKey: secretAccessKey,
		roleARN:         roleARN,
		sessionLabel:    sessionLabel,
	}
}

func (a *AssumeRoleProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.expired() {
		if err := a.refresh(ctx); err != nil {
			return aws.Credentials{}, err
		}
	}

	return a.creds, nil
}

func (a *AssumeRoleProvider) expired() bool {
	// 10 minute buffer
	return a.creds.Expires.Before(time.Now().Add(expirationBuffer))
}

func (a *AssumeRoleProvider) refresh(ctx context.Context) error {
	baseCreds := credentials.NewStaticCredentialsProvider(a.accessKeyID, a.secretAccessKey, "")
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithCredentialsProvider(baseCreds))
	if err != nil {
		return err
	}

	stsClient := sts.NewFromConfig(cfg)
	stsOutput, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         &a.roleARN,
		RoleSessionName: &a.sessionLabel,
	})
	if err != nil {
		return err
	}

	a.creds = aws.Credentials{
		AccessKeyID:     *stsOutput.Credentials.AccessKeyId,
		SecretAccessKey: *stsOutput.Credentials.SecretAccessKey,
		SessionToken:    *stsOutput.Credentials.SessionToken,
		CanExpire:       true,
		Expires:         *stsOutput.Credentials.Expiration,
	}
	return nil
}
