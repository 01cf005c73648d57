// Package gen renders resolver plans into Go source files.
//
// Generation uses text/template + go/format for readable, deterministic
// output: the same plan always renders to byte-identical source. One file
// is emitted per record type.
package gen
