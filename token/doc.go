// Package token provides the lexical pieces of block text: literal
// detection for raw scalar tokens, splitting of mapping entry lines into
// key and value, and quoting of strings and keys.
package token
