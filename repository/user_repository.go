package repository

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/bosscan/ginastel/models"
)

var users map[string]models.User

// SeedUsers menyiapkan dua akun outlet. Password bisa dioverride lewat env
// agar default development tidak terbawa ke produksi.
func SeedUsers() error {
	seeds := []struct {
		id, username, role, envKey, defaultPass string
	}{
		{"USR001", "penjaga_outlet", models.RoleStaff, "STAFF_PASSWORD", "ginastel123"},
		{"USR002", "owner_outlet", models.RoleOwner, "OWNER_PASSWORD", "ginastelf2"},
	}

	users = make(map[string]models.User, len(seeds))
	for _, s := range seeds {
		pass := os.Getenv(s.envKey)
		if pass == "" {
			pass = s.defaultPass
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(pass), 12)
		if err != nil {
			return fmt.Errorf("gagal hash password %s: %w", s.username, err)
		}
		users[s.username] = models.User{
			ID:       s.id,
			Username: s.username,
			Password: string(hashed),
			Role:     s.role,
		}
	}
	return nil
}

// FindUserByUsername mengembalikan akun outlet berdasarkan username.
func FindUserByUsername(username string) (models.User, bool) {
	u, ok := users[username]
	return u, ok
}

// CheckPassword membandingkan password plaintext dengan hash tersimpan.
func CheckPassword(u models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
