// Package passwordhash passlib uyumlu "$pbkdf2-sha256$" formatında parola özetleri üretir ve doğrular.
package passwordhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultRounds = 29000
	saltSize      = 16
	keySize       = 32
	scheme        = "pbkdf2-sha256"
)

var ErrMalformedHash = errors.New("geçersiz parola özeti formatı")

// Hash rastgele tuz ile özet üretir.
func Hash(password string) (string, error) {
	return HashWithRounds(password, DefaultRounds)
}

func HashWithRounds(password string, rounds int) (string, error) {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("tuz üretilemedi: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, rounds, keySize, sha256.New)
	return fmt.Sprintf("$%s$%d$%s$%s", scheme, rounds, ab64Encode(salt), ab64Encode(key)), nil
}

// Verify parolayı kayıtlı özetle sabit zamanlı karşılaştırır.
func Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	// "", scheme, rounds, salt, checksum
	if len(parts) != 5 || parts[0] != "" || parts[1] != scheme {
		return false, ErrMalformedHash
	}
	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false, ErrMalformedHash
	}
	salt, err := ab64Decode(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}
	expected, err := ab64Decode(parts[4])
	if err != nil || len(expected) == 0 {
		return false, ErrMalformedHash
	}

	key := pbkdf2.Key([]byte(password), salt, rounds, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// passlib "adapted base64": '+' yerine '.', dolgu yok.
func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	s = strings.TrimRight(strings.ReplaceAll(s, ".", "+"), "=")
	return base64.RawStdEncoding.DecodeString(s)
}
