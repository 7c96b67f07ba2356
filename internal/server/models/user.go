package models

import "time"

// User is the persisted user record. Password holds the bcrypt digest,
// never the plaintext.
type User struct {
	ID        string    `json:"id" dynamodbav:"id"`
	EmailID   string    `json:"emailId" dynamodbav:"emailId"`
	UserName  string    `json:"username" dynamodbav:"username"`
	FullName  string    `json:"fullName" dynamodbav:"fullName"`
	Password  string    `json:"-" dynamodbav:"password"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// UserUpdate lists the mutable fields of a user. Empty fields are left
// unchanged.
type UserUpdate struct {
	UserName string
	FullName string
	Password string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.UserName == "" && u.FullName == "" && u.Password == ""
}

// PublicUser is the representation returned to API callers.
type PublicUser struct {
	ID        string    `json:"id"`
	EmailID   string    `json:"emailId"`
	UserName  string    `json:"username"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public strips the password digest.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		EmailID:   u.EmailID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
