package user

// DuplicateEmailError signals that registration was attempted with an
// email that already has an account. The collection is left untouched.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "an account with this email already exists"
}

// InvalidCredentialsError signals that no stored account matched the
// provided email/password pair. The caller shows the reason inline and
// lets the user retry.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

// GuestReadOnlyError signals a profile edit attempted by a guest session.
type GuestReadOnlyError struct{}

func (e GuestReadOnlyError) Error() string {
	return "guest accounts cannot edit the profile"
}
