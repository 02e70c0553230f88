// Package enumext defines the public contract between the enumext code
// generator and the code it emits.
//
// The generator itself lives under compiler/gen. Generated enum types
// implement the Enum interface declared here, and the failure values
// surfaced by both the resolver and generated lookup helpers are the error
// types declared in this package.
package enumext
