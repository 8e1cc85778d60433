package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"gopkg.in/yaml.v3"
)

// unsupported enriches ErrUnsupportedFormat with the available names and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// RenderReport writes the formatted report to w
func RenderReport(w io.Writer, report *domain.CancellationReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report as %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the report to a timestamped file in dir and returns its path.
// "all" writes every registered format.
func GenerateReport(report *domain.CancellationReport, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = builtInFormatters
	} else {
		f := GetFormatterByName(format)
		if f == nil {
			return nil, unsupported(format)
		}
		formatters = []Formatter{f}
	}

	var files []string
	for _, f := range formatters {
		name, err := WriteFormatted(f, report, dir, Extension(f.Name()))
		if err != nil {
			return files, fmt.Errorf("failed to write %s report: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}

// SaveConfiguration writes a configuration back out as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
