package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. Each call salts freshly, so
// hashing the same password twice yields different values.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash. bcrypt's
// comparison is constant-time with respect to the hash contents.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
