package helper

import "strings"

// IsUniqueViolation: deteksi pelanggaran unique constraint.
// Cek substring supaya portable lintas driver (Postgres SQLSTATE 23505,
// SQLite "UNIQUE constraint failed") tanpa import pgconn.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
