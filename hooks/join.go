package hooks

import (
	"github.com/junctionio/junction/core/handler"
)

// Join composes hooks into a single hook running them in argument order.
// Nil entries are skipped. Joining nothing yields a hook that does nothing.
func Join[C handler.Context](hooks ...handler.Hook[C]) handler.Hook[C] {
	return func(ctx C) {
		for _, h := range hooks {
			if h != nil {
				h(ctx)
			}
		}
	}
}
