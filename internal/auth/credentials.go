package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Bounds accepted when reading a stored hash.
const (
	maxArgon2Time   = 16
	maxArgon2Memory = 1 << 20 // 1 GB
	maxArgon2KeyLen = 128
)

// ErrBadCredentials is returned by Verify for a wrong user or password.
var ErrBadCredentials = errors.New("usuário ou senha inválidos")

// Credentials is the content of the credential file ("user:hash").
// A nil *Credentials means no file exists and every login is accepted.
type Credentials struct {
	User string
	Hash string
}

// LoadCredentials reads the credential file at path. A missing file is not
// an error: it returns nil and logs that the gate is open.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("auth: no credential file at %s; any login is accepted (development mode). Run `pg360-admin set-password` to create one.", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	line := strings.TrimSpace(string(data))
	user, hash, ok := strings.Cut(line, ":")
	if !ok || user == "" || hash == "" {
		return nil, fmt.Errorf("invalid credential file format (expected: username:hash)")
	}
	if _, err := parseHash(hash); err != nil {
		return nil, fmt.Errorf("invalid credential file hash: %w", err)
	}
	return &Credentials{User: user, Hash: hash}, nil
}

// Verify checks a login attempt. With nil credentials any non-blank user is
// accepted.
func (c *Credentials) Verify(user, password string) error {
	if c == nil {
		if strings.TrimSpace(user) == "" {
			return ErrBadCredentials
		}
		return nil
	}

	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	passMatch, err := VerifyPassword(password, c.Hash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !userMatch || !passMatch {
		return ErrBadCredentials
	}
	return nil
}

// WriteCredentials hashes password and writes "user:hash" to path with
// mode 0600, creating parent directories.
func WriteCredentials(path, user, password string) error {
	if strings.ContainsRune(user, ':') {
		return fmt.Errorf("username must not contain ':'")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	content := fmt.Sprintf("%s:%s\n", user, hash)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

// HashPassword creates an Argon2id hash encoded as
// $argon2id$v=19$m=65536,t=1,p=4$salt$hash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword checks password against an encoded Argon2id hash.
func VerifyPassword(password, encoded string) (bool, error) {
	h, err := parseHash(encoded)
	if err != nil {
		return false, err
	}
	got := argon2.IDKey([]byte(password), h.salt, h.time, h.memory, h.threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(h.key, got) == 1, nil
}

type argon2Hash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// parseHash decodes $argon2id$v=19$m=..,t=..,p=..$salt$hash and rejects
// parameters argon2.IDKey would panic on or that would exhaust memory.
func parseHash(encoded string) (argon2Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return argon2Hash{}, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return argon2Hash{}, fmt.Errorf("not an argon2id hash")
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return argon2Hash{}, fmt.Errorf("failed to parse hash parameters: %w", err)
	}
	switch {
	case time < 1 || time > maxArgon2Time:
		return argon2Hash{}, fmt.Errorf("hash time parameter %d out of range", time)
	case threads < 1 || threads > 255:
		return argon2Hash{}, fmt.Errorf("hash parallelism parameter %d out of range", threads)
	case memory < 8*threads || memory > maxArgon2Memory:
		return argon2Hash{}, fmt.Errorf("hash memory parameter %d out of range", memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argon2Hash{}, fmt.Errorf("failed to decode salt: %w", err)
	}
	if len(salt) == 0 {
		return argon2Hash{}, fmt.Errorf("empty salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return argon2Hash{}, fmt.Errorf("failed to decode hash: %w", err)
	}
	if len(key) == 0 || len(key) > maxArgon2KeyLen {
		return argon2Hash{}, fmt.Errorf("hash length %d out of range", len(key))
	}

	return argon2Hash{memory: memory, time: time, threads: uint8(threads), salt: salt, key: key}, nil
}
