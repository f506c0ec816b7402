package config

import (
	"github.com/stevedore-data/stevedore/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Redshift struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Schema   string `yaml:"schema"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// UnmaskCredentials logs COPY statements with the credentials left in the clear.
	// Masking is the default.
	UnmaskCredentials bool `yaml:"unmaskCredentials,omitempty"`
}

type S3Settings struct {
	Bucket string `yaml:"bucket"`
	// Subdirectory is the key prefix for staged objects, normalized to end with a slash.
	Subdirectory       string `yaml:"subdirectory,omitempty"`
	AwsAccessKeyID     string `yaml:"awsAccessKeyID,omitempty"`
	AwsSecretAccessKey string `yaml:"awsSecretAccessKey,omitempty"`
	AwsSessionToken    string `yaml:"awsSessionToken,omitempty"`
	AwsRegion          string `yaml:"awsRegion,omitempty"`
	// IamRole authorizes the COPY when no access key pair is configured.
	// https://docs.aws.amazon.com/redshift/latest/dg/copy-parameters-authorization.html
	IamRole string `yaml:"iamRole,omitempty"`
	// RoleARN, when set alongside an access key pair, mints temporary STS credentials
	// for the upload instead of using the key pair directly.
	RoleARN string `yaml:"roleARN,omitempty"`
	// PutOptions are forwarded on staging uploads. Unrecognized keys are dropped.
	PutOptions map[string]any `yaml:"putOptions,omitempty"`
}

type Config struct {
	Redshift *Redshift   `yaml:"redshift,omitempty"`
	S3       *S3Settings `yaml:"s3,omitempty"`

	Reporting Reporting `yaml:"reporting"`
	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		}
	}
}
