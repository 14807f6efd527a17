package users

import (
	"strings"

	"github.com/kristo-godari/architectural-concepts/pkg/core"
)

// Kind identifies a user variant.
type Kind int

const (
	KindAdmin Kind = iota + 1
	KindRegular
)

// String returns the canonical upper-case tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindAdmin:
		return "ADMIN"
	case KindRegular:
		return "REGULAR"
	default:
		return "UNKNOWN"
	}
}

// Permissions returns the permissions descriptor for the kind.
func (k Kind) Permissions() string {
	switch k {
	case KindAdmin:
		return "Admin Permissions: Read, Write, Execute, Delete"
	case KindRegular:
		return "Regular Permissions: Read, Write"
	default:
		return ""
	}
}

// ParseKind resolves a tag case-insensitively.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToUpper(tag) {
	case "ADMIN":
		return KindAdmin, nil
	case "REGULAR":
		return KindRegular, nil
	default:
		return 0, core.NewArgumentError("userType", tag, "unknown user type: %s", tag)
	}
}

// User is an immutable user of a fixed kind.
type User struct {
	kind     Kind
	username string
}

// Kind returns the user's variant.
func (u *User) Kind() Kind { return u.kind }

// Username returns the name the user was created with.
func (u *User) Username() string { return u.username }

// Permissions returns the permissions descriptor fixed by the user's kind.
func (u *User) Permissions() string { return u.kind.Permissions() }
