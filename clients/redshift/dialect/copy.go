package dialect

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/stevedore-data/stevedore/lib/config/constants"
)

// CopySettings carry everything a COPY statement needs beyond the table and the
// staged object. Credential precedence: an access key pair wins, then an IAM role,
// then no authorization clause at all. The session token rides along with either.
type CopySettings struct {
	Delimiter  string
	Quote      string
	DateFormat string
	TimeFormat string

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	IamRole         string

	// ExtraParameters is appended verbatim, e.g. "TRUNCATECOLUMNS MAXERROR 10".
	ExtraParameters string
	Region          string
}

func (RedshiftDialect) BuildCopyStatement(tableID TableIdentifier, s3URI string, settings CopySettings) string {
	parts := []string{
		fmt.Sprintf("COPY %s FROM '%s'", tableID.FullyQualifiedName(), s3URI),
		fmt.Sprintf("DELIMITER '%s'", cmp.Or(settings.Delimiter, constants.DefaultDelimiter)),
		"IGNOREHEADER 1 CSV",
		fmt.Sprintf("QUOTE AS '%s'", cmp.Or(settings.Quote, constants.DefaultQuote)),
		fmt.Sprintf("DATEFORMAT '%s'", cmp.Or(settings.DateFormat, "auto")),
		fmt.Sprintf("TIMEFORMAT '%s'", cmp.Or(settings.TimeFormat, "auto")),
	}

	switch {
	case settings.AccessKeyID != "" && settings.SecretAccessKey != "":
		parts = append(parts, fmt.Sprintf("ACCESS_KEY_ID '%s' SECRET_ACCESS_KEY '%s'", settings.AccessKeyID, settings.SecretAccessKey))
	case settings.IamRole != "":
		parts = append(parts, fmt.Sprintf("IAM_ROLE '%s'", settings.IamRole))
	}

	if settings.SessionToken != "" {
		parts = append(parts, fmt.Sprintf("SESSION_TOKEN '%s'", settings.SessionToken))
	}

	if settings.ExtraParameters != "" {
		parts = append(parts, settings.ExtraParameters)
	}

	if settings.Region != "" {
		parts = append(parts, fmt.Sprintf("REGION '%s'", settings.Region))
	}

	return strings.Join(parts, " ")
}
