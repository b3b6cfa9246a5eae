//go:build tools

package tools

// Code generators are installed binaries, so nothing is imported here.
//
//	go run ./cmd/vhal-enumgen     regenerates pkg/constants/tables_gen.go from schema/enums
//	mockery                       regenerates pkg/registration/mocks (see .mockery.yml)
