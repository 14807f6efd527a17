// Package testutil provides testing utilities and helpers.
//
// The helpers here drive concurrent first access against a provider and
// assert that every caller saw the same identity.
//
// This package is internal and should not be imported by external code.
package testutil
