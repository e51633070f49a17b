package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// Verdict represents the qualitative classification of a metric value.
	Verdict string

	// ColumnStrategy represents how the table column set is derived.
	ColumnStrategy string

	// LogLevel represents the diagnostic logging level.
	LogLevel string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
	HTMLOut    OutputMode = "html"
)

// All verdicts supported.
const (
	GoodVerdict    Verdict = "good"
	WarningVerdict Verdict = "warning"
	BadVerdict     Verdict = "bad"
	NoVerdict      Verdict = "none"
)

// All column strategies supported.
const (
	FirstColumns ColumnStrategy = "first" // default
	UnionColumns ColumnStrategy = "union"
)

// All log levels supported.
const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn" // default
	ErrorLevel LogLevel = "error"
)

// Path naming constants.
const (
	PathDelimiter = " "      // joins an ancestor segment to its child
	NoKey         = "no-key" // key used for a bare scalar record
)

// AllVerdicts lists verdicts in display order.
var AllVerdicts = []Verdict{GoodVerdict, WarningVerdict, BadVerdict, NoVerdict}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
	HTMLOut:    {},
}

// ValidColumnStrategies lists all valid column strategies.
var ValidColumnStrategies = map[ColumnStrategy]struct{}{
	FirstColumns: {},
	UnionColumns: {},
}

// ValidLogLevels lists all valid log levels.
var ValidLogLevels = map[LogLevel]struct{}{
	DebugLevel: {},
	InfoLevel:  {},
	WarnLevel:  {},
	ErrorLevel: {},
}
