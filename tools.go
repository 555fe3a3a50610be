//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq generates the *_mock_test.go files in internal/service
// - github.com/pressly/goose/v3/cmd/goose is declared in go.mod's tool block
