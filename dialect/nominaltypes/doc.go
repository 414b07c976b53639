// Package nominaltypes implements the "typescript" dialect plugin: the same
// annotation surface as structuraltypes plus enum declarations, `as`
// assertions, non-null assertions, and literal types. Mutually exclusive
// with structuraltypes — installing both is a caller error, not something
// either plugin detects itself.
package nominaltypes
