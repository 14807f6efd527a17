// Package users implements a simple factory over a closed set of user kinds.
//
// A Kind is either KindAdmin or KindRegular. The permissions string of a
// User is fixed by its kind and never changes after construction.
//
// Example usage:
//
//	u, err := users.Create("admin", "alice")
//	switch {
//	case err != nil:
//		// unknown tag, errors.Is(err, core.ErrInvalidArgument)
//	case u == nil:
//		// empty tag, nothing created
//	default:
//		fmt.Println(u.Username(), u.Permissions())
//	}
package users
