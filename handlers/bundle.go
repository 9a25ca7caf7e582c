package handlers

import "latewiz/services/auth"

// HandlerBundle gathers every area handler plus the auth service the
// session middleware needs, so route registration takes one argument.
type HandlerBundle struct {
	AuthService auth.AuthService

	Auth     *AuthHandler
	Connect  *ConnectHandler
	Queue    *QueueHandler
	Accounts *AccountsHandler
	Posts    *PostsHandler
	Profiles *ProfilesHandler
	Media    *MediaHandler
}
