// Package access decides which view a caller may see.
package access

import "banker/internal/domain/user"

// View is a navigable screen of the client.
type View string

const (
	Login          View = "login"
	Register       View = "register"
	Home           View = "home"
	UserDashboard  View = "user_dashboard"
	AdminDashboard View = "admin_dashboard"
)

// Class groups views by who may see them.
type Class int

const (
	ClassAnonymous Class = iota
	ClassAuthenticated
	ClassUser
	ClassAdmin
)

// ClassOf returns the class of v. Unknown views are treated as requiring
// authentication.
func ClassOf(v View) Class {
	switch v {
	case Login, Register:
		return ClassAnonymous
	case UserDashboard:
		return ClassUser
	case AdminDashboard:
		return ClassAdmin
	default:
		return ClassAuthenticated
	}
}

// Decision is either Allow or a redirect, never both.
type Decision struct {
	Allow      bool
	RedirectTo View
}

func allow() Decision               { return Decision{Allow: true} }
func redirect(to View) Decision     { return Decision{RedirectTo: to} }
func (d Decision) Redirected() bool { return !d.Allow }

// DashboardFor is the landing view of an identity.
func DashboardFor(identity user.Identity) View {
	if identity.IsAdmin {
		return AdminDashboard
	}
	return UserDashboard
}

// Decide evaluates the navigation rules for identity (nil when anonymous)
// asking for view. It must be called on every navigation.
func Decide(identity *user.Identity, view View) Decision {
	class := ClassOf(view)

	if identity == nil {
		if class == ClassAnonymous {
			return allow()
		}
		return redirect(Login)
	}

	switch class {
	case ClassAnonymous:
		return redirect(DashboardFor(*identity))
	case ClassAdmin:
		if !identity.IsAdmin {
			return redirect(UserDashboard)
		}
	case ClassUser:
		if identity.IsAdmin {
			return redirect(AdminDashboard)
		}
	}

	if view == Home {
		return redirect(DashboardFor(*identity))
	}

	return allow()
}
