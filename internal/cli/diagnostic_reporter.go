package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/cmockgen/internal/errors"
)

// reportable is satisfied by both single and collected cmockgen errors
type reportable interface {
	error
	ErrorCode() errors.ErrorCode
	Context() map[string]interface{}
	Suggestions() []string
}

// DiagnosticReporter provides user-friendly error reporting
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportError prints err with its type, suggestions and, in verbose mode, its context
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintln(r.out)
	color.New(color.FgRed, color.Bold).Fprint(r.out, "ERROR:")
	fmt.Fprintf(r.out, " Mock Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var coded reportable
	if !stderrors.As(err, &coded) {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
		return
	}

	errorTypeStr := r.errorTypeName(coded.ErrorCode())
	fmt.Fprintf(r.out, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if r.verbose && len(coded.Context()) > 0 {
		r.printContext(coded.Context())
	}

	if suggestions := coded.Suggestions(); len(suggestions) > 0 {
		fmt.Fprintf(r.out, "Suggestions:\n")
		for _, suggestion := range suggestions {
			fmt.Fprintf(r.out, "   - %s\n", suggestion)
		}
		fmt.Fprintf(r.out, "\n")
	}
}

func (r *DiagnosticReporter) errorTypeName(code errors.ErrorCode) string {
	switch code {
	case errors.UsageErrorCode:
		return "Usage Error"
	case errors.ConfigurationErrorCode:
		return "Configuration Error"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.GenerationErrorCode:
		return "Mock Generation Error"
	default:
		return "Unknown Error"
	}
}

// printContext prints context entries sorted by key
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		value := fmt.Sprint(context[key])
		if strings.Contains(value, "\n") {
			value = "\n      " + strings.ReplaceAll(value, "\n", "\n      ")
		}
		fmt.Fprintf(r.out, "   %s: %s\n", r.formatContextKey(key), value)
	}
	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func (r *DiagnosticReporter) formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
