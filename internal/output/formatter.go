package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Formatter renders a rent-vs-buy report in one output format
type Formatter interface {
	Name() string
	Format(report *RentBuyReport) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *RentBuyReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *RentBuyReport) ([]byte, error) {
	return f.F(report)
}

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"csv":     CSVFormatter{},
	"html":    HTMLFormatter{},
	"json":    FormatterFunc{ID: "json", F: func(r *RentBuyReport) ([]byte, error) { return Encode("json", r) }},
	"yaml":    FormatterFunc{ID: "yaml", F: func(r *RentBuyReport) ([]byte, error) { return Encode("yaml", r) }},
}

// GetFormatterByName returns a registered formatter
func GetFormatterByName(name string) (Formatter, error) {
	f, ok := formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (available: %s)", name, strings.Join(FormatterNames(), ", "))
	}
	return f, nil
}

// FormatterNames lists the registered formats, sorted
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode marshals any result as indented JSON or YAML
func Encode(format string, v any) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", format)
	}
}

// WriteFormatted formats the report and saves it as fincalc_report_<timestamp>.<ext>
// in the current directory, returning the file name.
func WriteFormatted(f Formatter, report *RentBuyReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("fincalc_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
