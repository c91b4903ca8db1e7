package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/pension-drawdown/internal/domain"
)

// exportFormats are the file formats written by the "all" pseudo-format.
var exportFormats = []string{"csv", "json", "xlsx", "pdf", "html"}

// GenerateReport writes the comparison in the given format into dir and returns the written paths.
// The pseudo-format "all" writes every file format.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		paths := make([]string, 0, len(exportFormats))
		for _, name := range exportFormats {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir)
			if err != nil {
				return paths, fmt.Errorf("%s export failed: %w", name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// UnsupportedFormatError enriches ErrUnsupportedFormat with the available formatters and aliases.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
