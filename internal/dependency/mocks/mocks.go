// Package mocks provides testify mocks for the dependency interfaces.
package mocks

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}
