// Package rbac is the single source of truth for mapping the role claim to
// client-side capabilities. Callers must never branch on raw role strings;
// they ask HasCapability instead. These checks only gate what the UI offers:
// the server re-validates every operation.
package rbac

import (
	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/common"
)

// Capability is an atomic permission checked before enabling an action.
type Capability string

const (
	BookRead   Capability = "BOOK_READ"
	BookCreate Capability = "BOOK_CREATE"
	BookUpdate Capability = "BOOK_UPDATE"
	BookDelete Capability = "BOOK_DELETE"

	UserRead   Capability = "USER_READ"
	UserCreate Capability = "USER_CREATE"
	UserUpdate Capability = "USER_UPDATE"
	UserDelete Capability = "USER_DELETE"

	BorrowRead   Capability = "BORROW_READ"
	BorrowCreate Capability = "BORROW_CREATE"
	BorrowUpdate Capability = "BORROW_UPDATE"
	BorrowDelete Capability = "BORROW_DELETE"

	FineRead   Capability = "FINE_READ"
	FineUpdate Capability = "FINE_UPDATE"
)

// All lists every known capability. Mainly useful in tests and for
// exhaustive permission displays.
var All = []Capability{
	BookRead, BookCreate, BookUpdate, BookDelete,
	UserRead, UserCreate, UserUpdate, UserDelete,
	BorrowRead, BorrowCreate, BorrowUpdate, BorrowDelete,
	FineRead, FineUpdate,
}

// userCapabilities is the fixed allow-list for the regular user role.
var userCapabilities = map[Capability]struct{}{
	BookRead:     {},
	BorrowRead:   {},
	BorrowCreate: {},
}

// HasCapability reports whether identity may use the given capability.
// Rules, in order: no identity denies everything; admins are allowed
// everything; regular users get the fixed allow-list; unknown roles get
// nothing.
func HasCapability(identity *models.Identity, c Capability) bool {
	if identity == nil {
		return false
	}

	switch identity.Role {
	case common.RoleAdmin:
		return true
	case common.RoleUser:
		_, ok := userCapabilities[c]
		return ok
	default:
		return false
	}
}
