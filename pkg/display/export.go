package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Formats lists every accepted --output value
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatTOML}

// Encode serializes v in one of the machine-readable formats. v must be a
// struct or map for TOML.
func Encode(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		return toml.Marshal(v)
	}
	return nil, fmt.Errorf("unsupported output format %q (want one of %s)", format, strings.Join(Formats[1:], ", "))
}
