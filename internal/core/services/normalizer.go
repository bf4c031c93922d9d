package services

import (
	"strings"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// Canonical source field names. Descriptions are tried in priority order;
// the keyword header varies across records and is matched by prefix.
const (
	fieldCitation   = "Citation"
	fieldTimePeriod = "Time Period of Content"
	fieldCategory   = "Data Category"
	fieldCustodian  = "Data Custodian"
	fieldMetaRef    = "External Metadata Reference"
	fieldContact    = "Point of Contact"

	keywordPrefix = "keywords"
)

// descriptionFields is the fixed priority order for competing description
// headers; the first non-empty value wins.
var descriptionFields = []string{
	"Description",
	"Detailed Description",
	"Overview Description",
}

// Normalizer converts raw heterogeneous records into the fixed Record
// schema. Absent or malformed fields degrade to "", never to an error.
type Normalizer struct{}

// NewNormalizer creates a new record normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the normalised record for one catalogue entry.
// The returned record retains rec as a read-only reference and aliases no
// other mutable state.
func (n *Normalizer) Normalize(title string, rec domain.RawRecord) domain.Record {
	return domain.Record{
		ID:          title,
		Title:       title,
		Citation:    rec.Value(fieldCitation),
		Description: n.resolveDescription(rec),
		TimePeriod:  rec.Value(fieldTimePeriod),
		Category:    rec.Value(fieldCategory),
		Custodian:   rec.Value(fieldCustodian),
		Keywords:    n.resolveKeywords(rec),
		Link:        ResolveLink(rec.Value(fieldMetaRef), rec.Value(fieldContact)),
		Raw:         rec,
	}
}

// resolveDescription tries the canonical description headers in priority
// order and returns the first non-empty trimmed value.
func (n *Normalizer) resolveDescription(rec domain.RawRecord) string {
	for _, name := range descriptionFields {
		if v := rec.Value(name); v != "" {
			return v
		}
	}
	return ""
}

// resolveKeywords scans the fields in source order and returns the value of
// the first one whose lower-cased header starts with "keywords". The source
// header varies ("Keywords", "Keywords (comma-separated)", ...), so an
// exact lookup is not enough.
func (n *Normalizer) resolveKeywords(rec domain.RawRecord) string {
	for _, f := range rec {
		if strings.HasPrefix(strings.ToLower(f.Name), keywordPrefix) {
			return strings.TrimSpace(f.Value)
		}
	}
	return ""
}
