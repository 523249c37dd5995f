package models

// User is a registered account of the service.
//
// PasswordHash and SigningSecret are credentials and are excluded from JSON,
// so a User can be written to a response without leaking them.
type User struct {
	// ID is assigned by the store at creation and never changes.
	ID int64 `json:"id"`

	// Email is the login identifier. It is unique and compared as stored
	// (case-sensitive).
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Role is an optional descriptive attribute supplied at registration.
	Role *string `json:"role"`

	// LanguagePreference is an optional descriptive attribute supplied at
	// registration.
	LanguagePreference *string `json:"languagePreference"`

	// SigningSecret is the per-user key used to sign and verify this user's
	// tokens. Empty for records created before secrets were provisioned.
	SigningSecret string `json:"-"`
}

// HasSigningSecret reports whether a per-user signing secret is provisioned.
func (u User) HasSigningSecret() bool {
	return u.SigningSecret != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
