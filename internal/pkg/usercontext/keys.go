package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey      = "authenticated"
	KeyUserID    = "user_id"
	KeyUserName  = "user_name"
	KeyLastName  = "user_last_name"
	KeyUserEmail = "user_email"
)
