package constants

const (
	// DefaultRedshiftPort is applied when the config omits the port.
	DefaultRedshiftPort = 5439

	// DefaultDelimiter and DefaultQuote match what Redshift's CSV mode assumes.
	DefaultDelimiter = ","
	DefaultQuote     = `"`
)

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)
