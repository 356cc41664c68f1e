// Package publish orchestrates a gallery run: load the catalog, validate
// it, render the gallery markup, and splice the result into every
// configured target page with a backup taken before each rewrite.
package publish
