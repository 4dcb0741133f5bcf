package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt cost factors; registration pays the full price, password updates
// use the cheaper factor.
const (
	RegisterHashCost = 10
	UpdateHashCost   = 6
)

func GeneratePasswordHash(password string, cost int) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hashedPassword), nil
}

// ComparePasswordHash returns nil iff password matches. bcrypt's comparison
// is constant-time with respect to the hash contents.
func ComparePasswordHash(hashedPassword []byte, password string) error {
	return bcrypt.CompareHashAndPassword(hashedPassword, []byte(password))
}
