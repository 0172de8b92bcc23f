package cli

import (
	"context"
	"time"

	"habitlink/internal/api"
	"habitlink/internal/cache"
	"habitlink/internal/hostenv"
	"habitlink/internal/i18n"
	"habitlink/internal/invite"
	"habitlink/internal/session"
)

// Context is the shared state handed to every command.
type Context struct {
	API     *api.Client
	Cache   *cache.Store
	Tokens  session.TokenStore
	Invites session.Marker
	Bridge  *hostenv.Bridge
	Haptics hostenv.Haptics
	Locale  i18n.Locale
	Debug   bool
}

// Resolver builds the invite resolver over this context's collaborators.
func (c *Context) Resolver() *invite.Resolver {
	return invite.NewResolver(c.API, c.Invites, c.Haptics, c.Bridge)
}

// callCtx bounds one-shot CLI calls. The core imposes no timeouts of its own
// on the transport; this only keeps a wedged terminal command from hanging
// forever.
func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}
