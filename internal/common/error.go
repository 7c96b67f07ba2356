package common

// Code is a stable, client-visible error code.
type Code string

const (
	// business errors
	CodeValidationFailed   Code = "UM4001E"
	CodeInvalidUserID      Code = "UM4002E"
	CodeInvalidCredentials Code = "UM4003E"
	CodeEmailTaken         Code = "UM4004E"
	CodeNotAuthorized      Code = "UM4031E"

	// system errors
	CodeHashing       Code = "UM5001E"
	CodeDatabase      Code = "UM5002E"
	CodeTokenSigning  Code = "UM5003E"
	CodeConfiguration Code = "UM5004E"
)

const (
	MsgValidationFailed   = "User Validation Failed"
	MsgInvalidUserID      = "Invalid User Id"
	MsgInvalidCredentials = "Invalid credentials!"
	MsgEmailTaken         = "Email id is already registered"
	MsgNotAuthorized      = "User Not Authorized"
	MsgMissingToken       = "missing token"
	MsgInvalidToken       = "invalid or expired token"
	MsgHashing            = "Exception during password hashing"
	MsgDatabase           = "DB Query Execution Error"
	MsgTokenSigning       = "Exception during token signing"
)
