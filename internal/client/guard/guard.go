// Package guard decides whether a navigation attempt is allowed, as a pure
// function of route metadata and the current session state. It is consulted
// before every navigation and never mutates the session.
package guard

import (
	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/client/session"
)

// RouteMeta is the navigation metadata attached to a route.
// Role, when set, restricts the route to users carrying exactly that role.
type RouteMeta struct {
	Public       bool
	RequiresAuth bool
	Role         models.Role
}

// Route is a named navigation target.
type Route struct {
	Name string
	Path string
	Meta RouteMeta
}

// Decision is the outcome of one navigation check: either allow, or exactly
// one redirect target with optional query parameters.
type Decision struct {
	Allow      bool
	RedirectTo string
	Query      map[string]string
}

func allow() Decision {
	return Decision{Allow: true}
}

func redirect(name string, query map[string]string) Decision {
	return Decision{RedirectTo: name, Query: query}
}

// dashboardFor picks the role-appropriate landing route.
func dashboardFor(sess session.Snapshot) string {
	if sess.IsAdmin() {
		return RouteAdminDashboard
	}
	return RouteUserDashboard
}

// Decide evaluates a navigation attempt to the given route. It is total and
// deterministic: every input yields allow or exactly one redirect.
//
//  1. Public routes are open, except that an authenticated user visiting the
//     login or registration route is sent to their role's dashboard.
//  2. Auth-requiring routes send unauthenticated callers to login, carrying
//     the originally requested path as the "redirect" query parameter, and
//     send role mismatches to the caller's own dashboard.
//  3. Routes without constraints are open.
func Decide(to Route, sess session.Snapshot) Decision {
	if to.Meta.Public {
		if sess.IsAuthenticated() && (to.Name == RouteLogin || to.Name == RouteRegister) {
			return redirect(dashboardFor(sess), nil)
		}
		return allow()
	}

	if to.Meta.RequiresAuth {
		if !sess.IsAuthenticated() {
			return redirect(RouteLogin, map[string]string{"redirect": to.Path})
		}
		if to.Meta.Role != "" && to.Meta.Role != sess.Role() {
			return redirect(dashboardFor(sess), nil)
		}
	}

	return allow()
}
