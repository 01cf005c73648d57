// Package analyze provides package loading and metadata extraction for
// annotated storage types.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// structs carrying a //putgen:target directive and to normalize their
// column-tagged members into a TypeModel.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeModel: one annotated type's storage target, ordered columns,
//     and construction strategy
//   - ColumnMember: one persistent column with its semantic type, read
//     strategy, and key flag
package analyze
