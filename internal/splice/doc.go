// Package splice performs anchored text surgery on whole documents held in
// memory: replacing the span between two literal marker substrings, and
// guarded one-time insertions for the CSS and script patches.
//
// The functions are pure; reading, backing up, and writing the document
// belong to the publisher. Both splice anchors are preserved in the output,
// so a successful run leaves the document spliceable again.
package splice
