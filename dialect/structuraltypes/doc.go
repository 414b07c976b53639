// Package structuraltypes implements the "flow" dialect plugin: type
// annotations on bindings/parameters/return types, `type` aliases,
// `interface` declarations, and the structural type-expression grammar
// (object/union/intersection/array/function types, exact objects).
package structuraltypes
