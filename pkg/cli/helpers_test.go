package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

const catalogYAML = `
MANDATORY_FIELD: "is required"
MIN_LENGTH_NOT_REACHED: "is too short"
MAX_LENGTH_EXCEEDED: "is too long"
REGEX_NOT_SATISFIED: "has a wrong format"
VALUE_TOO_SMALL: "is too small"
VALUE_TOO_LARGE: "is too large"
TAG_NOT_SATISFIED: "is malformed"
`

const validForm = `
fields:
  - tag: name
    value: "Alice"
    rules:
      - {type: mandatory, priority: 0, value: true}
      - {type: min_length, priority: 1, value: 3}
      - {type: max_length, priority: 2, value: 10}
  - tag: age
    kind: number
    value: 30
    rules:
      - {type: min, priority: 0, value: 18}
      - {type: max, priority: 1, value: 130}
  - tag: email
    value: "alice@example.com"
    rules:
      - {type: tag, priority: 0, value: email}
`

const invalidForm = `
fields:
  - tag: name
    value: "Al"
    rules:
      - {type: mandatory, priority: 0, value: true}
      - {type: min_length, priority: 1, value: 3}
  - tag: code
    value: "AB-12"
    rules:
      - {type: regex, priority: 0, value: "[A-Z]{2}-[0-9]{2}"}
  - tag: nickname
    value: ""
    rules:
      - {type: mandatory, priority: 0, value: true}
`

var catalog = constraint.MessageMap{
	"MANDATORY_FIELD":        "is required",
	"MIN_LENGTH_NOT_REACHED": "is too short",
	"MAX_LENGTH_EXCEEDED":    "is too long",
	"REGEX_NOT_SATISFIED":    "has a wrong format",
	"VALUE_TOO_SMALL":        "is too small",
	"VALUE_TOO_LARGE":        "is too large",
	"TAG_NOT_SATISFIED":      "is malformed",
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
