package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor applied to every new password hash.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
// The comparison is constant-time.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
