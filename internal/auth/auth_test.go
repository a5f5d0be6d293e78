package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pg360/internal/model"
	"pg360/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	kv := storage.NewMemory()

	assert.False(t, LoggedIn(kv))
	assert.Equal(t, model.ScreenLogin, Guard(kv, model.ScreenCategoryForm))
	assert.Equal(t, model.ScreenLogin, Guard(kv, model.ScreenLogin))

	require.NoError(t, kv.Set(FlagKey, "1"))
	assert.False(t, LoggedIn(kv), "only the exact string true counts")
	assert.Equal(t, model.ScreenLogin, Guard(kv, model.ScreenHome))

	require.NoError(t, MarkLoggedIn(kv))
	assert.True(t, LoggedIn(kv))
	assert.Equal(t, model.ScreenCategoryForm, Guard(kv, model.ScreenCategoryForm))

	require.NoError(t, Logout(kv))
	assert.Equal(t, model.ScreenLogin, Guard(kv, model.ScreenEvents))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	other, err := HashPassword("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts must differ")

	ok, err := VerifyPassword("segredo123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("errado", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyPassword("x", "invalid")
	assert.Error(t, err)
	_, err = VerifyPassword("x", "$bcrypt$v=1$m=65536,t=1,p=4$salt$hash")
	assert.Error(t, err)
}

func TestCredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "auth.secret")

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Nil(t, creds)
	assert.NoError(t, creds.Verify("qualquer", ""))
	assert.ErrorIs(t, creds.Verify("  ", "x"), ErrBadCredentials)

	require.NoError(t, WriteCredentials(path, "admin", "segredo123"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	creds, err = LoadCredentials(path)
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "admin", creds.User)

	assert.NoError(t, creds.Verify("admin", "segredo123"))
	assert.ErrorIs(t, creds.Verify("admin", "errado"), ErrBadCredentials)
	assert.ErrorIs(t, creds.Verify("root", "segredo123"), ErrBadCredentials)

	assert.Error(t, WriteCredentials(path, "a:b", "x"))
}

func TestLoadCredentials_Malformed(t *testing.T) {
	const (
		salt = "c2FsdHNhbHRzYWx0c2FsdA"
		key  = "aGFzaGhhc2hoYXNoaGFzaA"
	)
	tests := []struct {
		name string
		line string
	}{
		{"no colon", "no-colon-here"},
		{"empty hash", "admin:"},
		{"not argon2id", "admin:$argon2i$v=19$m=65536,t=1,p=4$" + salt + "$" + key},
		{"zero parallelism", "admin:$argon2id$v=19$m=65536,t=1,p=0$" + salt + "$" + key},
		{"parallelism wraps uint8", "admin:$argon2id$v=19$m=65536,t=1,p=256$" + salt + "$" + key},
		{"zero time", "admin:$argon2id$v=19$m=65536,t=0,p=4$" + salt + "$" + key},
		{"huge memory", "admin:$argon2id$v=19$m=4294967295,t=1,p=4$" + salt + "$" + key},
		{"empty salt", "admin:$argon2id$v=19$m=65536,t=1,p=4$$" + key},
		{"empty key", "admin:$argon2id$v=19$m=65536,t=1,p=4$" + salt + "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "auth.secret")
			require.NoError(t, os.WriteFile(path, []byte(tt.line+"\n"), 0o600))

			_, err := LoadCredentials(path)
			assert.Error(t, err)

			// A hash edited after startup must fail the login, not crash it.
			if _, hash, ok := strings.Cut(tt.line, ":"); ok && hash != "" {
				creds := &Credentials{User: "admin", Hash: hash}
				assert.NotPanics(t, func() {
					assert.Error(t, creds.Verify("admin", "x"))
				})
			}
		})
	}
}
