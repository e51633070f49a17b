package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/scorecard/schema"
)

// Verdict label constants.
const (
	GoodValue    = "Good"    // Good value
	WarningValue = "Warning" // Warning value
	BadValue     = "Bad"     // Bad value
	NoneValue    = "-"       // No verdict
)

// Color variables for console output.
var (
	GoodColor    = color.New(color.FgGreen)           // GoodColor marks a healthy metric.
	WarningColor = color.New(color.FgYellow)          // WarningColor represents standard caution, not bold.
	BadColor     = color.New(color.FgRed, color.Bold) // BadColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a verdict.
// This is the core logic used for CSV, JSON, and summary printing.
func GetPlainLabel(v schema.Verdict) string {
	switch v {
	case schema.GoodVerdict:
		return GoodValue
	case schema.WarningVerdict:
		return WarningValue
	case schema.BadVerdict:
		return BadValue
	default:
		return NoneValue
	}
}

// GetColorText colors text for console output (table) based on a verdict.
// Text with no verdict is returned unchanged.
func GetColorText(v schema.Verdict, text string) string {
	switch v {
	case schema.GoodVerdict:
		return GoodColor.Sprint(text)
	case schema.WarningVerdict:
		return WarningColor.Sprint(text)
	case schema.BadVerdict:
		return BadColor.Sprint(text)
	default:
		return text
	}
}

// GetColorLabel returns a colored verdict label for console output.
func GetColorLabel(v schema.Verdict) string {
	return GetColorText(v, GetPlainLabel(v))
}

// CSSClass returns the stylesheet class used for a verdict cell in HTML output.
func CSSClass(v schema.Verdict) string {
	switch v {
	case schema.GoodVerdict:
		return "success"
	case schema.WarningVerdict:
		return "warning"
	case schema.BadVerdict:
		return "danger"
	default:
		return ""
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

var titleReplacer = strings.NewReplacer("_", " ", "-", " ")

// ColumnTitle prettifies a column name for headers: underscores and dashes become spaces.
func ColumnTitle(name string) string {
	return titleReplacer.Replace(name)
}

// TruncateName cuts a display name to at most maxLen runes.
// A non-positive maxLen leaves the name untouched.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if maxLen > 0 && len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return name
}

// TruncateWidth truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateWidth(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// FormatValue renders a table cell value. Integral numbers print without
// decimals and other numbers with precision decimals. An absent value renders
// empty and a present null renders "null".
func FormatValue(value any, present bool, precision int) string {
	if !present {
		return ""
	}
	switch t := value.(type) {
	case nil:
		return "null"
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatFloat(t, 'f', 0, 64)
		}
		return strconv.FormatFloat(t, 'f', precision, 64)
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
