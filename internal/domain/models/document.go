package model

import "maps"

// IDField is the key under which every stored document keeps its identifier.
const IDField = "_id"

// Document is a schemaless record as stored in a collection.
type Document map[string]any

// Post is a blog article. Conventional fields are category, title, author,
// content and date, none of them enforced.
type Post = Document

// Banner is a promotional record with no defined shape.
type Banner = Document

type hexer interface {
	Hex() string
}

// ID returns the storage-assigned identifier as a string, or "" when absent.
func (d Document) ID() string {
	switch id := d[IDField].(type) {
	case string:
		return id
	case hexer:
		return id.Hex()
	default:
		return ""
	}
}

// StringField returns the named field when it holds a string.
func (d Document) StringField(name string) (string, bool) {
	s, ok := d[name].(string)
	return s, ok
}

// WithoutID returns a shallow copy of d with any identifier removed.
func (d Document) WithoutID() Document {
	out := maps.Clone(d)
	if out == nil {
		out = Document{}
	}
	delete(out, IDField)
	return out
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	return maps.Clone(d)
}
