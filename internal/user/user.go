package user

// User is a stored user row. AddressID refers to an address owned elsewhere
// and is never checked for existence.
type User struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Birthdate string `json:"birthdate" db:"birthdate"`
	AddressID int    `json:"address_id" db:"address_id"`
}
