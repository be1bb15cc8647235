package domain

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age,omitempty"`
	Preference1  *string   `json:"preference_1,omitempty"`
	Preference2  *string   `json:"preference_2,omitempty"`
	Preference3  *string   `json:"preference_3,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Interests collapses the three preference slots, dropping empty ones.
func (u *User) Interests() []string {
	var out []string
	for _, p := range []*string{u.Preference1, u.Preference2, u.Preference3} {
		if p != nil && *p != "" {
			out = append(out, *p)
		}
	}
	return out
}

type UserInfo struct {
	ID       int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Age      *int   `json:"age,omitempty"`
}

func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Age:      u.Age,
	}
}

type CreateUserRequest struct {
	UserName    string  `json:"user_name"`
	Email       string  `json:"email"`
	Password    string  `json:"user_password"`
	Age         *int    `json:"age,omitempty"`
	Preference1 *string `json:"preference_1,omitempty"`
	Preference2 *string `json:"preference_2,omitempty"`
	Preference3 *string `json:"preference_3,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	UserName    *string `json:"user_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"user_password,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Preference1 *string `json:"preference_1,omitempty"`
	Preference2 *string `json:"preference_2,omitempty"`
	Preference3 *string `json:"preference_3,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *CreateUserRequest) Validate() error {
	var errs ValidationErrors
	if r.UserName == "" {
		errs = append(errs, ValidationError{Field: "user_name", Message: "is required"})
	}
	if r.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	} else if !emailRegex.MatchString(r.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.Password == "" {
		errs = append(errs, ValidationError{Field: "user_password", Message: "is required"})
	} else if len(r.Password) < 6 {
		errs = append(errs, ValidationError{Field: "user_password", Message: "must be at least 6 characters"})
	}
	if r.Age != nil && (*r.Age < 0 || *r.Age > 150) {
		errs = append(errs, ValidationError{Field: "age", Message: "out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Validate() error {
	var errs ValidationErrors
	if r.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateUserRequest) Validate() error {
	var errs ValidationErrors
	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, ValidationError{Field: "user_password", Message: "must be at least 6 characters"})
	}
	if r.Age != nil && (*r.Age < 0 || *r.Age > 150) {
		errs = append(errs, ValidationError{Field: "age", Message: "out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
