package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/yurin-kami/packchann-client/internal/client/guard"
)

// Open navigates to a route by name or path, running the access rules
// against the current session. A denied navigation follows the redirect
// the rules produce, the same way the web client does.
func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(guard.Routes()))
		for _, r := range guard.Routes() {
			names = append(names, r.Name)
		}
		printlnFn("Usage: open <route|path>")
		printlnFn("Routes:", strings.Join(names, ", "))
		return nil
	}

	target := args[0]
	to, ok := guard.Lookup(target)
	if !ok {
		to = guard.Match(target)
	}

	sess := a.session.Snapshot()
	for {
		decision := guard.Decide(to, sess)
		if decision.Allow {
			a.route = to
			printlnFn(fmt.Sprintf("Now at %s (%s)", to.Name, to.Path))
			return nil
		}

		next, ok := guard.Lookup(decision.RedirectTo)
		if !ok {
			printlnFn("Navigation blocked.")
			return nil
		}
		printlnFn(fmt.Sprintf("Redirected to %s", next.Name))
		if q, found := decision.Query["redirect"]; found && q != "" {
			printlnFn(fmt.Sprintf("  (will return to %s after login)", q))
		}
		to = next
	}
}
