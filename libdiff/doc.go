// Package libdiff computes differences between block text documents,
// line by line with [Lines], and between node trees with [Nodes].
package libdiff
