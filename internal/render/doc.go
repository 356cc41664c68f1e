// Package render maps artwork records to the HTML fragments the splicer
// inserts: per-record cards, the featured-works section, and the
// category-tabbed gallery, plus the one-time CSS and script blocks.
//
// Rendering is pure. Category display order comes from configuration and
// is independent of record order; empty buckets are omitted entirely.
// User-supplied field text is escaped for both the HTML context and the
// inline trigger's JS string-literal context.
package render
