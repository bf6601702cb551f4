package portfolio

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

//go:embed data/portfolio.yaml
var defaultTable []byte

// DefaultSource names the embedded table in errors and logs.
const DefaultSource = "embedded:portfolio.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default decodes and validates the embedded data table.
func Default() (*Portfolio, error) {
	return Parse(DefaultSource, defaultTable)
}

// Load reads a data table file from disk. An empty path selects the embedded
// table.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a data table document and validates it. source is only used
// for error messages.
func Parse(source string, data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, folioerrors.NewParseError(source, extractLine(err), err)
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
