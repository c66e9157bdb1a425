package middleware

import (
	"context"

	"github.com/zee467/twitter-clone/app/session"
)

func GetClaims(ctx context.Context) *session.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*session.Claims); ok {
			return c
		}
	}
	return nil
}
