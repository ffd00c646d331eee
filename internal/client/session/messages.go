package session

// User-facing notification texts.
const (
	MsgLoginSucceeded    = "login successful"
	MsgRegisterSucceeded = "registration successful"
	MsgLoginFailed       = "login failed"
	MsgRegisterFailed    = "registration failed"
	MsgNetworkError      = "network error, please try again later"
	MsgPasswordMismatch  = "passwords do not match"
	MsgLoggedOut         = "logged out"
)
