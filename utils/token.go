package utils

import (
	"math/rand"
)

// GenerateTempPassword produces the throwaway credential a freshly created
// patient receives by email.
func GenerateTempPassword(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}
