package awslib

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"gopkg.in/yaml.v3"
)

// PutOptions are the object settings we recognize and forward on an upload.
// Anything zero-valued is left off the request entirely.
type PutOptions struct {
	ACL                     string            `yaml:"ACL"`
	CacheControl            string            `yaml:"CacheControl"`
	ContentDisposition      string            `yaml:"ContentDisposition"`
	ContentEncoding         string            `yaml:"ContentEncoding"`
	ContentLanguage         string            `yaml:"ContentLanguage"`
	ContentLength           int64             `yaml:"ContentLength"`
	ContentMD5              string            `yaml:"ContentMD5"`
	ContentType             string            `yaml:"ContentType"`
	Expires                 time.Time         `yaml:"Expires"`
	GrantFullControl        string            `yaml:"GrantFullControl"`
	GrantRead               string            `yaml:"GrantRead"`
	GrantReadACP            string            `yaml:"GrantReadACP"`
	GrantWriteACP           string            `yaml:"GrantWriteACP"`
	Metadata                map[string]string `yaml:"Metadata"`
	RequestPayer            string            `yaml:"RequestPayer"`
	SSECustomerAlgorithm    string            `yaml:"SSECustomerAlgorithm"`
	SSECustomerKey          string            `yaml:"SSECustomerKey"`
	SSECustomerKeyMD5       string            `yaml:"SSECustomerKeyMD5"`
	SSEKMSKeyID             string            `yaml:"SSEKMSKeyId"`
	ServerSideEncryption    string            `yaml:"ServerSideEncryption"`
	StorageClass            string            `yaml:"StorageClass"`
	Tagging                 string            `yaml:"Tagging"`
	WebsiteRedirectLocation string            `yaml:"WebsiteRedirectLocation"`
}

// PutOptionsFromMap unpacks a dynamic settings map (e.g. straight out of YAML) into
// PutOptions. Keys we do not recognize are dropped on the floor rather than erroring,
// so only settings PutObject understands ever reach the request.
func PutOptionsFromMap(settings map[string]any) PutOptions {
	var opts PutOptions
	if len(settings) == 0 {
		return opts
	}

	// Same trick as unpacking telemetry settings, round-trip through the yaml library.
	yamlBytes, err := yaml.Marshal(settings)
	if err != nil {
		return opts
	}

	_ = yaml.Unmarshal(yamlBytes, &opts)
	return opts
}

func (p PutOptions) apply(input *s3.PutObjectInput) {
	if p.ACL != "" {
		input.ACL = types.ObjectCannedACL(p.ACL)
	}
	if p.CacheControl != "" {
		input.CacheControl = aws.String(p.CacheControl)
	}
	if p.ContentDisposition != "" {
		input.ContentDisposition = aws.String(p.ContentDisposition)
	}
	if p.ContentEncoding != "" {
		input.ContentEncoding = aws.String(p.ContentEncoding)
	}
	if p.ContentLanguage != "" {
		input.ContentLanguage = aws.String(p.ContentLanguage)
	}
	if p.ContentLength > 0 {
		input.ContentLength = aws.Int64(p.ContentLength)
	}
	if p.ContentMD5 != "" {
		input.ContentMD5 = aws.String(p.ContentMD5)
	}
	if p.ContentType != "" {
		input.ContentType = aws.String(p.ContentType)
	}
	if !p.Expires.IsZero() {
		input.Expires = aws.Time(p.Expires)
	}
	if p.GrantFullControl != "" {
		input.GrantFullControl = aws.String(p.GrantFullControl)
	}
	if p.GrantRead != "" {
		input.GrantRead = aws.String(p.GrantRead)
	}
	if p.GrantReadACP != "" {
		input.GrantReadACP = aws.String(p.GrantReadACP)
	}
	if p.GrantWriteACP != "" {
		input.GrantWriteACP = aws.String(p.GrantWriteACP)
	}
	if len(p.Metadata) > 0 {
		input.Metadata = p.Metadata
	}
	if p.RequestPayer != "" {
		input.RequestPayer = types.RequestPayer(p.RequestPayer)
	}
	if p.SSECustomerAlgorithm != "" {
		input.SSECustomerAlgorithm = aws.String(p.SSECustomerAlgorithm)
	}
	if p.SSECustomerKey != "" {
		input.SSECustomerKey = aws.String(p.SSECustomerKey)
	}
	if p.SSECustomerKeyMD5 != "" {
		input.SSECustomerKeyMD5 = aws.String(p.SSECustomerKeyMD5)
	}
	if p.SSEKMSKeyID != "" {
		input.SSEKMSKeyId = aws.String(p.SSEKMSKeyID)
	}
	if p.ServerSideEncryption != "" {
		input.ServerSideEncryption = types.ServerSideEncryption(p.ServerSideEncryption)
	}
	if p.StorageClass != "" {
		input.StorageClass = types.StorageClass(p.StorageClass)
	}
	if p.Tagging != "" {
		input.Tagging = aws.String(p.Tagging)
	}
	if p.WebsiteRedirectLocation != "" {
		input.WebsiteRedirectLocation = aws.String(p.WebsiteRedirectLocation)
	}
}
