// Package utils provides shared internal utilities.
//
// FanOut releases many goroutines at the same instant against one function,
// which is how the demo and the tests provoke a race on first access.
//
// This package is internal and should not be imported by external code.
package utils
