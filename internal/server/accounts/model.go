package accounts

import "time"

// Account is a stored storefront identity. Email is the unique key; the
// password is kept exactly as submitted (credential hashing is out of scope
// for this service). DOB and Gender are free-form profile fields, empty
// until the profile is completed.
type Account struct {
	ID        string
	Email     string
	Password  string
	DOB       string
	Gender    string
	CreatedAt time.Time
}
