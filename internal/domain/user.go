package domain

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Hidden in JSON responses
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is what a successful signup or login flow hands back to the
// handler: the signed bearer token and the user it identifies.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UserRepository interface {
	Create(user *User) error
	GetByEmail(email string) (*User, error)
	GetByID(id uint) (*User, error)
	// SearchIDsByName returns the ids of users whose first or last name
	// contains the given fragment, case-insensitively.
	SearchIDsByName(name string) ([]uint, error)
}

type AuthService interface {
	Signup(req SignupRequest) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	// Logout denylists the presented token until it would naturally expire.
	Logout(token string) error
}
