package api

import "skillshare/internal/api/handler"

// HandlersGroup bundles all initialized handler instances.
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	UserFollowHandler *handler.UserFollowHandler
}
