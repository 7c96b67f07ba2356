package services

import (
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/go-playground/validator/v10"
)

const (
	passwordMinLength = 8

	// PasswordMaxBytes is the longest input bcrypt accepts.
	PasswordMaxBytes = 72

	// passwordSpecials are the characters accepted as "special" by the
	// password rule.
	passwordSpecials = "#?!@$%^&*-"
)

// RegisterUserRequest is the payload of a registration.
type RegisterUserRequest struct {
	EmailID  string `json:"emailId" validate:"required,email"`
	UserName string `json:"username" validate:"required,alphanum,min=3,max=30"`
	FullName string `json:"fullName" validate:"required"`
	Password string `json:"password" validate:"required,bcryptmax,password"`
}

// UpdateUserRequest changes the supplied fields of user ID. EmailID is
// accepted for compatibility with older clients but never changes.
type UpdateUserRequest struct {
	ID       string `json:"id" validate:"required"`
	EmailID  string `json:"emailId" validate:"omitempty,email"`
	UserName string `json:"username" validate:"omitempty,alphanum,min=3,max=30"`
	FullName string `json:"fullName"`
	Password string `json:"password" validate:"omitempty,bcryptmax,password"`
}

type LoginUserRequest struct {
	EmailID  string `json:"emailId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// registration of a fixed tag on a fresh validator cannot fail
		_ = validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return IsStrongPassword(fl.Field().String())
		})
		_ = validate.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= PasswordMaxBytes
		})
	})
	return validate
}

// IsStrongPassword reports whether p has at least eight characters, an
// upper-case letter, a lower-case letter, a digit and one of #?!@$%^&*-.
func IsStrongPassword(p string) bool {
	if len([]rune(p)) < passwordMinLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// validateRequest checks req and reports every violated rule in a single
// UM4001E validation error.
func validateRequest(req any) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return common.NewValidationError(common.CodeValidationFailed, common.MsgValidationFailed)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}

	return common.NewValidationError(common.CodeValidationFailed,
		common.MsgValidationFailed+" "+strings.Join(msgs, ","))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Field() {
	case "id":
		return "Id is required!"
	case "emailId":
		if e.Tag() == "required" {
			return "Email id is required!"
		}
		return "Email id is invalid!"
	case "username":
		switch e.Tag() {
		case "required":
			return "Username is required!"
		case "min", "max":
			return "Username should be from 3 to 30 characters."
		case "alphanum":
			return "Username can only contain alphabets and numbers. Special charecters are not allowed."
		}
		return "Username is invalid!"
	case "fullName":
		if e.Tag() == "required" {
			return "Fullname is required!"
		}
		return "Fullname is invalid!"
	case "password":
		switch e.Tag() {
		case "required":
			return "Password is required!"
		case "bcryptmax":
			return "Password must be at most 72 bytes long"
		case "password":
			return "Password must have minimum eight characters, at least one uppercase letter, one lowercase letter, one number and one special character"
		}
		return "Password is invalid!"
	}
	return "Invalid Field"
}
