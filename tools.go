//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks for service and handler interfaces (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod; the
//   binary also runs migrations itself via "bookshelf migrate"
