package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stevedore-data/stevedore/lib/config/constants"
	"github.com/stevedore-data/stevedore/lib/stringutil"
)

// DSN - Redshift speaks the postgres wire protocol, so the DSN follows the postgres format.
func (r Redshift) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", r.Username, r.Password, r.Host, r.Port, r.Database)
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	file, err := os.Open(pathToConfig)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	if config.Redshift != nil && config.Redshift.Port == 0 {
		config.Redshift.Port = constants.DefaultRedshiftPort
	}

	if config.S3 != nil && config.S3.Subdirectory != "" && !strings.HasSuffix(config.S3.Subdirectory, "/") {
		config.S3.Subdirectory += "/"
	}

	return &config, nil
}

// Validate checks the warehouse settings and, when staging is configured, the S3 settings.
// The S3 block as a whole is optional; without it only read paths are available.
func (c Config) Validate() error {
	if c.Redshift == nil {
		return fmt.Errorf("redshift config is nil")
	}

	if stringutil.Empty(c.Redshift.Host, c.Redshift.Database, c.Redshift.Schema, c.Redshift.Username, c.Redshift.Password) {
		return fmt.Errorf("one of redshift settings is empty (host, database, schema, username, password)")
	}

	if c.Redshift.Port <= 0 {
		return fmt.Errorf("invalid redshift port: %d", c.Redshift.Port)
	}

	if c.S3 != nil {
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3 bucket is empty")
		}

		if c.S3.RoleARN != "" && stringutil.Empty(c.S3.AwsAccessKeyID, c.S3.AwsSecretAccessKey) {
			return fmt.Errorf("s3 roleARN requires awsAccessKeyID and awsSecretAccessKey")
		}
	}

	return nil
}
