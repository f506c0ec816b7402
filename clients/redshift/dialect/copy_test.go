package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedshiftDialect_BuildCopyStatement(t *testing.T) {
	tableID := NewTableIdentifier("public", "users")
	s3URI := "s3://staging-bucket/loads/users-5b3c4a.csv"

	{
		// Defaults, no credentials configured
		assert.Equal(t,
			`COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto'`,
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{}),
		)
	}
	{
		// Access key pair wins over the IAM role
		assert.Equal(t,
			`COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' ACCESS_KEY_ID 'key' SECRET_ACCESS_KEY 'secret'`,
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
				IamRole:         "arn:aws:iam::123:role/loader",
			}),
		)
	}
	{
		// IAM role when there's no key pair
		assert.Equal(t,
			`COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' IAM_ROLE 'arn:aws:iam::123:role/loader'`,
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{IamRole: "arn:aws:iam::123:role/loader"}),
		)
	}
	{
		// A partial key pair does not authorize
		assert.Equal(t,
			`COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' IAM_ROLE 'arn:aws:iam::123:role/loader'`,
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{
				AccessKeyID: "key",
				IamRole:     "arn:aws:iam::123:role/loader",
			}),
		)
	}
	{
		// Session token rides along regardless of the auth branch
		assert.Equal(t,
			`COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER ',' IGNOREHEADER 1 CSV QUOTE AS '"' DATEFORMAT 'auto' TIMEFORMAT 'auto' ACCESS_KEY_ID 'key' SECRET_ACCESS_KEY 'secret' SESSION_TOKEN 'token'`,
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{
				AccessKeyID:     "key",
				SecretAccessKey: "secret",
				SessionToken:    "token",
			}),
		)
	}
	{
		// Everything at once, including the extra parameter passthrough and region
		assert.Equal(t,
			"COPY public.users FROM 's3://staging-bucket/loads/users-5b3c4a.csv' DELIMITER '|' IGNOREHEADER 1 CSV QUOTE AS ''' DATEFORMAT 'YYYY-MM-DD' TIMEFORMAT 'epochsecs' IAM_ROLE 'arn:aws:iam::123:role/loader' SESSION_TOKEN 'token' TRUNCATECOLUMNS MAXERROR 10 REGION 'us-west-2'",
			RedshiftDialect{}.BuildCopyStatement(tableID, s3URI, CopySettings{
				Delimiter:       "|",
				Quote:           "'",
				DateFormat:      "YYYY-MM-DD",
				TimeFormat:      "epochsecs",
				IamRole:         "arn:aws:iam::123:role/loader",
				SessionToken:    "token",
				ExtraParameters: "TRUNCATECOLUMNS MAXERROR 10",
				Region:          "us-west-2",
			}),
		)
	}
}
