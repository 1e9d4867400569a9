package definition

import (
	"io"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Condition kinds. An empty kind is a plain where.
const (
	KindWhere    = "where"
	KindDate     = "date"
	KindIn       = "in"
	KindFunction = "function"
)

// Group markers.
const (
	GroupStart = "start"
	GroupEnd   = "end"
)

// File is the root of a definitions document.
type File struct {
	Queries []*Query `yaml:"queries"`
}

// Query describes one SOQL statement.
type Query struct {
	Name    string      `yaml:"name"`
	Object  string      `yaml:"object"`
	Fields  []string    `yaml:"fields"`
	Where   []Condition `yaml:"where"`
	OrderBy []Order     `yaml:"order_by"`
	Limit   any         `yaml:"limit"`
	Offset  any         `yaml:"offset"`
}

// Condition is either a group marker or one filter.
type Condition struct {
	Group      string `yaml:"group"`
	Kind       string `yaml:"kind"`
	Column     string `yaml:"column"`
	Operator   string `yaml:"operator"`
	Function   string `yaml:"function"`
	Connective string `yaml:"connective"`
	Value      any    `yaml:"value"`
	Values     []any  `yaml:"values"`
	Negate     bool   `yaml:"negate"`
}

type Order struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

// Load reads and decodes a definitions file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening definitions file")
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding %s", path)
	}
	return file, nil
}

// Decode decodes a definitions document and names unnamed queries with a
// fresh ULID.
func Decode(r io.Reader) (*File, error) {
	file := &File{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		if errors.Is(err, io.EOF) {
			return file, nil
		}
		return nil, errors.Wrap(err, "invalid yaml")
	}

	for i, q := range file.Queries {
		if q == nil {
			return nil, errors.Errorf("queries[%d] is empty", i)
		}
		if strings.TrimSpace(q.Name) == "" {
			q.Name = ulid.Make().String()
		}
	}
	return file, nil
}
