package domain

// User is a panel account.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateUserOpts holds the fields sent when registering a new account.
type CreateUserOpts struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Identity is the (display name, user id) pair a server is created for.
type Identity struct {
	FirstName string
	UserID    int
}
