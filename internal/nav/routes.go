// Package nav defines the client's route table and navigation primitives.
// Routes mirror the product's page structure; guards consume them as data.
package nav

import "strings"

// Route constants for every view in the client.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"

	RouteDashboard = "/dashboard"
	RouteAdvice    = "/advice"
	RoutePlans     = "/plans"
	RouteLog       = "/log"
	RouteReport    = "/report"
	RouteCommunity = "/community"
	RouteProfile   = "/profile"

	RouteAdminDashboard = "/admin/dashboard"
	RouteAdminUsers     = "/admin/users"
	RouteAdminFoods     = "/admin/foods"
	RouteAdminRetrain   = "/admin/ai-retrain"
)

// RouteDefault is the default authenticated landing page.
const RouteDefault = RouteDashboard

// Access is the protection level required to render a route.
type Access int

const (
	// AccessPublic routes render for anyone.
	AccessPublic Access = iota
	// AccessAuthenticated routes require a logged-in session.
	AccessAuthenticated
	// AccessAdmin routes additionally require the admin role.
	AccessAdmin
)

var routeAccess = map[string]Access{
	RouteLogin:    AccessPublic,
	RouteRegister: AccessPublic,

	RouteDashboard: AccessAuthenticated,
	RouteAdvice:    AccessAuthenticated,
	RoutePlans:     AccessAuthenticated,
	RouteLog:       AccessAuthenticated,
	RouteReport:    AccessAuthenticated,
	RouteCommunity: AccessAuthenticated,
	RouteProfile:   AccessAuthenticated,

	RouteAdminDashboard: AccessAdmin,
	RouteAdminUsers:     AccessAdmin,
	RouteAdminFoods:     AccessAdmin,
	RouteAdminRetrain:   AccessAdmin,
}

// AccessFor returns the protection level for a route and whether the route
// is known. Detail routes (e.g. /plans/{id}) inherit their parent's level.
func AccessFor(route string) (Access, bool) {
	if access, ok := routeAccess[route]; ok {
		return access, true
	}
	// Admin subtree is admin-only regardless of depth.
	if strings.HasPrefix(route, "/admin/") {
		return AccessAdmin, true
	}
	for parent, access := range routeAccess {
		if parent != "/" && strings.HasPrefix(route, parent+"/") {
			return access, true
		}
	}
	if strings.HasPrefix(route, "/recipes/") {
		return AccessAuthenticated, true
	}
	return AccessPublic, false
}
