// Package mocks contains testify mocks for the port interfaces, in the
// layout mockery generates (one file per interface, EXPECT() helpers).
package mocks
