// Package internalcheck holds static policy tests over the module.
//
// The tests load packages with golang.org/x/tools/go/packages and fail on
// layering violations: cgo outside the two packages allowed to use it, and
// direct terminal output from the bridge core, which must report through its
// Logger. The package has no API.
package internalcheck
