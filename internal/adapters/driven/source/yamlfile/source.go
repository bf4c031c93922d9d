// Package yamlfile loads the raw catalogue from a YAML document.
//
// The catalogue root is a mapping from record title to a mapping of raw
// fields. Decoding goes through yaml.Node rather than a map so that both
// entry order and field order survive: Go maps are unordered, and the
// core's ambiguity rules (first matching field wins) depend on source
// order.
package yamlfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driven"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogueSource = (*Source)(nil)

// Source reads a raw catalogue from a YAML file on disk.
type Source struct {
	path string
}

// New creates a catalogue source for the given file path.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the catalogue file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and parses the catalogue file.
func (s *Source) Load(ctx context.Context) (domain.RawCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	// An empty document is a valid, empty catalogue.
	if len(root.Content) == 0 {
		return domain.RawCollection{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalogue root must be a mapping of title to record: %w",
			domain.ErrInvalidInput)
	}

	collection := make(domain.RawCollection, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		title := doc.Content[i].Value
		collection = append(collection, domain.RawEntry{
			Title:  title,
			Record: decodeRecord(title, doc.Content[i+1]),
		})
	}

	logger.Debug("Loaded %d raw entries from %s", len(collection), s.path)
	return collection, nil
}

// decodeRecord converts one record mapping into an ordered field list.
// Non-scalar values are not part of the schema and decode to "", like any
// other unusable value.
func decodeRecord(title string, node *yaml.Node) domain.RawRecord {
	if node.Kind != yaml.MappingNode {
		logger.Warn("Record %q is not a mapping, treating as empty", title)
		return domain.RawRecord{}
	}

	fields := make(domain.RawRecord, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		v := ""
		switch {
		case value.Kind == yaml.ScalarNode && value.Tag != "!!null":
			v = value.Value
		case value.Kind == yaml.ScalarNode:
			// Explicit null, same as absent.
		default:
			logger.Warn("Record %q field %q has a non-scalar value, treating as empty",
				title, key.Value)
		}

		fields = append(fields, domain.Field{Name: key.Value, Value: v})
	}
	return fields
}
