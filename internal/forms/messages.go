package forms

// Тексты, которые видит пользователь
const (
	MsgLoginFieldsRequired = "Username and password are required."
	MsgInvalidCredentials  = "Invalid credentials."
	MsgLoginSucceeded      = "Login successful"
	MsgSessionNotSaved     = "Could not save the session. Please try again."

	MsgAllFieldsRequired     = "All fields are required."
	MsgPasswordTooShort      = "Password must be at least 8 characters."
	MsgPasswordsDoNotMatch   = "Passwords do not match."
	MsgRegistrationSucceeded = "Account created successfully. You can sign in now."
	MsgRegistrationFailed    = "Could not create the account. Please try again."
)

const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
)

const MinPasswordLength = 8
