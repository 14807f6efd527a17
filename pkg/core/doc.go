// Package core provides the error types shared by the pattern packages.
//
// Every rejected input is reported as an *ArgumentError, which matches the
// ErrInvalidArgument sentinel under errors.Is, so callers can branch on the
// error kind without inspecting messages:
//
//	u, err := users.Create("GUEST", "carol")
//	if errors.Is(err, core.ErrInvalidArgument) {
//		// log and continue
//	}
//
// Configuration problems detected at process start are reported as
// *ConfigError and match ErrInvalidConfig.
package core
