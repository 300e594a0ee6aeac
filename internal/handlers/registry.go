package handlers

// AppHandlers bundles the route handlers for registration.
type AppHandlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
}
