package domain

import "strings"

// Field is a single raw metadata attribute as it appeared in the source.
// Field names are case- and punctuation-variable across records; no fixed
// schema is guaranteed.
type Field struct {
	// Name is the source field header, verbatim.
	Name string

	// Value is the raw scalar value. An absent or null source value is "".
	Value string
}

// RawRecord is the unmodified field list for one catalogue entry.
// Fields keep the order they had in the source document; all lookups scan
// in that order, so ambiguous headers resolve to the first match.
type RawRecord []Field

// Get returns the raw value of the first field with the exact given name.
// The second return is false when no field matches.
func (r RawRecord) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the trimmed value of the first field with the exact given
// name, or "" when the field is absent. This is the uniform
// optional-to-default coercion applied at the field extraction boundary.
func (r RawRecord) Value(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// RawEntry pairs a catalogue title with its raw record.
type RawEntry struct {
	// Title is the catalogue key for this entry. Unique within a collection.
	Title string

	// Record is the raw field list.
	Record RawRecord
}

// RawCollection is the full raw catalogue in source order.
// Titles are unique; the source document uses a mapping, which makes
// duplicates structurally impossible.
type RawCollection []RawEntry

// Record is a normalised catalogue record.
// It is created once at collection build time and never mutated.
// Every field is "" when the source had no usable value, never absent.
type Record struct {
	// ID is the unique identifier, identical to Title.
	ID string

	// Title is the catalogue key this record was built from.
	Title string

	// Citation is the recommended citation text.
	Citation string

	// Description is the best available description, chosen by fixed
	// priority across the source's competing description fields.
	Description string

	// TimePeriod is the time period of content.
	TimePeriod string

	// Category is the data category.
	Category string

	// Custodian is the data custodian.
	Custodian string

	// Keywords is the raw keyword list, comma separated as in the source.
	Keywords string

	// Link is the single best outbound reference, or "" when neither
	// candidate field held a usable hyperlink.
	Link string

	// Raw retains the source record for traceability. Read-only.
	Raw RawRecord
}

// SearchText returns the projection of the record's text fields that
// free-text queries match against: title, citation, description, keywords,
// category and custodian joined with single spaces, in that fixed order.
func (r Record) SearchText() string {
	return strings.Join([]string{
		r.Title,
		r.Citation,
		r.Description,
		r.Keywords,
		r.Category,
		r.Custodian,
	}, " ")
}
