package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Jaymi-01/framez/pkg/config"
	"github.com/fatih/color"
	json "github.com/json-iterator/go"
)

// Format is the rendering mode chosen with --output
type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatText  Format = "text"
)

var (
	out io.Writer = color.Output

	Bold  = color.New(color.Bold)
	Faint = color.New(color.Faint)
	Red   = color.New(color.FgRed)
)

// SetOutput redirects all printing, mostly for tests
func SetOutput(w io.Writer) {
	out = w
}

// GetFormat returns the configured format, defaulting to text
func GetFormat() Format {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

func ValidateFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// JSON writes data as indented JSON
func JSON(data interface{}) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}

// Table writes rows under bold headers, aligned with a tabwriter
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	bolded := make([]string, len(headers))
	for i, h := range headers {
		bolded[i] = Bold.Sprint(h)
	}
	fmt.Fprintln(w, strings.Join(bolded, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// Field is one line of a record, printed in order
type Field struct {
	Key   string
	Value interface{}
}

// Record prints key: value lines under an optional title
func Record(title string, fields []Field) {
	if title != "" {
		Bold.Fprintln(out, title)
	}
	for _, f := range fields {
		Bold.Fprint(out, f.Key+": ")
		fmt.Fprintf(out, "%v\n", f.Value)
	}
}

// Println writes a plain line
func Println(a ...interface{}) {
	fmt.Fprintln(out, a...)
}

func Printf(format string, args ...interface{}) {
	fmt.Fprintf(out, format, args...)
}

func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(out, msg+"\n", args...)
}

func PrintError(msg string, args ...interface{}) {
	Red.Fprintf(out, "Error: "+msg+"\n", args...)
}

func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(out, msg+"\n", args...)
}

func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(out, "Warning: "+msg+"\n", args...)
}
