package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/tidwall/jsonc"
)

// LoadDirectory reads the application directory. The document is edited
// by hand, so comments and trailing commas are accepted.
func LoadDirectory(path string) (domain.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Directory{}, fmt.Errorf("read directory document: %w", err)
	}

	return ParseDirectory(data)
}

// ParseDirectory decodes a JSONC directory document.
func ParseDirectory(data []byte) (domain.Directory, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 || stripped[0] != '{' {
		return domain.Directory{}, fmt.Errorf("parse directory document: top level must be an object")
	}

	var d domain.Directory
	if err := json.Unmarshal(stripped, &d); err != nil {
		return domain.Directory{}, fmt.Errorf("parse directory document: %w", err)
	}
	return d, nil
}
