// Package guard runs the access rules in front of every gateway route.
package guard

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"banker/internal/domain/access"
	"banker/internal/domain/user"
)

// Prefix is where the gateway mounts its routes.
const Prefix = "/api/v1"

var paths = map[access.View]string{
	access.Login:          Prefix + "/login",
	access.Register:       Prefix + "/register",
	access.Home:           Prefix + "/",
	access.UserDashboard:  Prefix + "/user/dashboard",
	access.AdminDashboard: Prefix + "/admin/dashboard",
}

// PathOf returns the gateway route that renders view.
func PathOf(view access.View) string {
	if p, ok := paths[view]; ok {
		return p
	}
	return paths[access.Home]
}

// RedirectBody is written with every 303.
type RedirectBody struct {
	RedirectTo access.View `json:"redirect_to" doc:"View the caller is sent to"`
}

type IdentitySource interface {
	Identity() (user.Identity, bool)
}

type Guard struct {
	source IdentitySource
	log    *slog.Logger
}

func New(source IdentitySource, log *slog.Logger) *Guard {
	return &Guard{
		source: source,
		log:    log.With(slog.String("component", "guard")),
	}
}

// Decide evaluates the rules for view against the current identity.
func (g *Guard) Decide(view access.View) access.Decision {
	var identity *user.Identity
	if id, ok := g.source.Identity(); ok {
		identity = &id
	}
	return access.Decide(identity, view)
}

// Middleware lets the request through to view or answers 303 with the screen to go to.
func (g *Guard) Middleware(view access.View) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		d := g.Decide(view)
		if d.Allow {
			next(ctx)
			return
		}

		g.log.Debug("redirect",
			slog.String("view", string(view)),
			slog.String("to", string(d.RedirectTo)),
		)

		ctx.SetHeader("Location", PathOf(d.RedirectTo))
		ctx.SetHeader("Content-Type", "application/json")
		ctx.SetStatus(http.StatusSeeOther)

		if err := json.NewEncoder(ctx.BodyWriter()).Encode(RedirectBody{RedirectTo: d.RedirectTo}); err != nil {
			g.log.Error("write redirect", slog.String("error", err.Error()))
		}
	}
}
