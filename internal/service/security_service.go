package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode"

	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/argon2"
)

const pinHashKey = "security:pin_hash"

// Argon2id parameters for PIN hashing.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

// SecurityServiceImpl implements ports.SecurityService. The PIN hash lives in
// the key-value store; a verified PIN yields a short-lived HS256 session
// token that gates mutating endpoints.
type SecurityServiceImpl struct {
	kv     ports.KeyValueStore
	secret []byte
	expiry time.Duration
	issuer string
	log    zerolog.Logger
}

// NewSecurityService creates a new SecurityServiceImpl.
func NewSecurityService(kv ports.KeyValueStore, secret string, expiry time.Duration, issuer string, log zerolog.Logger) *SecurityServiceImpl {
	return &SecurityServiceImpl{
		kv:     kv,
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		log:    log,
	}
}

// SetPIN hashes and stores the wallet PIN.
func (s *SecurityServiceImpl) SetPIN(ctx context.Context, pin string) error {
	if err := validatePIN(pin); err != nil {
		return err
	}

	encoded, err := hashPIN(pin)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}
	if err := s.kv.Set(ctx, pinHashKey, []byte(encoded)); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("save pin hash: %w", err))
	}

	s.log.Info().Msg("wallet PIN updated")
	return nil
}

// VerifyPIN checks the PIN and issues a session token on success.
func (s *SecurityServiceImpl) VerifyPIN(ctx context.Context, pin string) (string, time.Time, error) {
	stored, err := s.kv.Get(ctx, pinHashKey)
	if err != nil {
		return "", time.Time{}, apperror.ErrPersistence(fmt.Errorf("load pin hash: %w", err))
	}
	if stored == nil {
		return "", time.Time{}, apperror.ErrPINNotSet()
	}

	ok, err := verifyPIN(pin, string(stored))
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify pin: %w", err))
	}
	if !ok {
		s.log.Warn().Msg("PIN verification failed")
		return "", time.Time{}, apperror.ErrInvalidPIN()
	}

	now := time.Now()
	expiresAt := now.Add(s.expiry)
	claims := jwt.MapClaims{
		"sub": "wallet-session",
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("signing token: %w", err))
	}
	return tokenString, expiresAt, nil
}

// ValidateToken checks a session token's signature and expiry.
func (s *SecurityServiceImpl) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return apperror.ErrInvalidToken()
	}
	return nil
}

func validatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 8 {
		return apperror.Validation("PIN must be 4 to 8 digits")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return apperror.Validation("PIN must be 4 to 8 digits")
		}
	}
	return nil
}

// hashPIN returns $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func hashPIN(pin string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(pin), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPIN(pin string, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("parsing version: %w", err)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("parsing params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	other := argon2.IDKey([]byte(pin), salt, iterations, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, other) == 1, nil
}
