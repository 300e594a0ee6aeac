package services

// ServiceContainer bundles the services for DI into the handlers.
type ServiceContainer struct {
	AuthService AuthService
	UserService UserService
}
