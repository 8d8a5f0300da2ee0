package response

import (
	"deepscan/internal/core/domain/user"
)

// User is the account projection rendered to clients. The password hash and
// reset token fields never leave the server.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Username = string(du.Username)
	u.Email = string(du.Email)
	u.Role = string(du.Role)
}
