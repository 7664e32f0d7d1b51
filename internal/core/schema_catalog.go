package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// DefaultSchemaSupport is the range of AUTOSAR_000NN.xsd revisions the
// writer produces and the reader is tested against.
const DefaultSchemaSupport = ">=48,<=53"

var schemaFilePattern = regexp.MustCompile(`^AUTOSAR_(\d{5})\.xsd$`)

// SchemaCatalog gates the schema revisions a document may declare.
type SchemaCatalog struct {
	specifier string
	supported pep440.Specifiers
}

// NewSchemaCatalog parses a PEP 440 specifier over schema revision
// numbers, e.g. ">=48,<=53". Empty uses DefaultSchemaSupport.
func NewSchemaCatalog(specifier string) (*SchemaCatalog, error) {
	if strings.TrimSpace(specifier) == "" {
		specifier = DefaultSchemaSupport
	}
	parsed, err := pep440.NewSpecifiers(specifier)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid schema support range %q", specifier)).
			WithCause(err)
	}
	return &SchemaCatalog{specifier: specifier, supported: parsed}, nil
}

func (c *SchemaCatalog) Specifier() string { return c.specifier }

// Check reports whether version is inside the supported range.
func (c *SchemaCatalog) Check(version int) error {
	parsed, err := pep440.Parse(strconv.Itoa(version))
	if err != nil || version <= 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid schema version %d", version))
	}
	if !c.supported.Check(parsed) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("schema version %d is outside the supported range %s", version, c.specifier))
	}
	return nil
}

// Parse reads a schema revision from "51", "00051" or "AUTOSAR_00051.xsd"
// and checks it against the catalog. Classic release names such as
// "4.3.0" are rejected since they do not identify a schema file.
func (c *SchemaCatalog) Parse(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if match := schemaFilePattern.FindStringSubmatch(trimmed); match != nil {
		trimmed = match[1]
	}
	version, err := strconv.Atoi(trimmed)
	if err != nil {
		if _, releaseErr := pep440.Parse(trimmed); releaseErr == nil && strings.Contains(trimmed, ".") {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s is an AUTOSAR release, not a schema revision; use a number such as 51", trimmed))
		}
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid schema version %q", text))
	}
	if err := c.Check(version); err != nil {
		return 0, err
	}
	return version, nil
}
