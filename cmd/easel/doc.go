// Command easel publishes a CSV painting catalog into static gallery
// pages. It renders the gallery markup from the catalog and splices it
// between anchor comments in each configured HTML target, taking a
// backup before every rewrite.
package main
