// Package ir provides the shared value model of structext.
//
// A [Node] is a tagged union over null, booleans, numbers, strings,
// sequences and mappings.  Mappings keep their keys in insertion order
// in the parallel slices Fields and Values.  Nodes form trees: there
// are no parent pointers and a Node is never shared between two
// containers by the constructors in this package.
package ir
