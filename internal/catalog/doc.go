// Package catalog loads and validates the artwork record set.
//
// Load turns the delimited catalog file into an ordered, immutable slice of
// Records; Validate runs every check over every record and reports all
// violations together so the artist can fix the whole CSV in one pass. The
// record set's lifecycle is a single run: loaded, rendered, discarded.
package catalog
