package guard

import (
	"strings"

	"github.com/yurin-kami/packchann-client/internal/client/models"
)

// Route names, mirroring the application's navigation map.
const (
	RouteHome           = "home"
	RouteLogin          = "login"
	RouteRegister       = "register"
	RouteUserDashboard  = "user-dashboard"
	RouteUserPacks      = "user-packs"
	RouteUserMail       = "user-mail"
	RouteUserProfile    = "user-profile"
	RouteAdminDashboard = "admin-dashboard"
	RouteAdminPacks     = "admin-packs"
	RouteAdminUsers     = "admin-users"
	RouteAdminCheckIn   = "admin-checkin"
	RouteNotFound       = "notfound"
)

var (
	publicMeta = RouteMeta{Public: true}
	userMeta   = RouteMeta{RequiresAuth: true, Role: models.RoleUser}
	adminMeta  = RouteMeta{RequiresAuth: true, Role: models.RoleAdmin}
)

// routes is the full navigation table in declaration order.
var routes = []Route{
	{Name: RouteHome, Path: "/", Meta: publicMeta},
	{Name: RouteLogin, Path: "/login", Meta: publicMeta},
	{Name: RouteRegister, Path: "/register", Meta: publicMeta},
	{Name: RouteUserDashboard, Path: "/user", Meta: userMeta},
	{Name: RouteUserPacks, Path: "/user/packs", Meta: userMeta},
	{Name: RouteUserMail, Path: "/user/mail", Meta: userMeta},
	{Name: RouteUserProfile, Path: "/user/profile", Meta: userMeta},
	{Name: RouteAdminDashboard, Path: "/admin", Meta: adminMeta},
	{Name: RouteAdminPacks, Path: "/admin/packs", Meta: adminMeta},
	{Name: RouteAdminUsers, Path: "/admin/users", Meta: adminMeta},
	{Name: RouteAdminCheckIn, Path: "/admin/checkin", Meta: adminMeta},
}

// notFound is the catch-all for unknown paths; it carries no constraints.
var notFound = Route{Name: RouteNotFound, Path: "/:pathMatch(.*)*"}

// Routes returns a copy of the navigation table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds a route by name.
func Lookup(name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Match resolves a path to its route, falling back to the catch-all for
// anything unknown. Trailing slashes are ignored.
func Match(path string) Route {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		trimmed = "/"
	}
	for _, r := range routes {
		if r.Path == trimmed {
			return r
		}
	}
	return notFound
}
