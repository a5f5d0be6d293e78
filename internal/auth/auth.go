// Package auth implements the admin gate: a stored login flag checked on
// every navigation, and an optional Argon2id credential file checked at
// login. It is a convenience gate, not a security boundary.
package auth

import (
	"log"

	"pg360/internal/model"
	"pg360/internal/storage"
)

// FlagKey is the store key holding the login flag.
const FlagKey = "adminLogado"

const flagOn = "true"

// LoggedIn reports whether the flag holds exactly "true". A store error
// counts as logged out.
func LoggedIn(kv storage.KV) bool {
	v, ok, err := kv.Get(FlagKey)
	if err != nil {
		log.Printf("auth: reading login flag: %v", err)
		return false
	}
	return ok && v == flagOn
}

// Guard returns target when the admin is logged in and the login screen
// otherwise.
func Guard(kv storage.KV, target model.Screen) model.Screen {
	if target == model.ScreenLogin || LoggedIn(kv) {
		return target
	}
	return model.ScreenLogin
}

// MarkLoggedIn stores the login flag.
func MarkLoggedIn(kv storage.KV) error {
	return kv.Set(FlagKey, flagOn)
}

// Logout removes the login flag.
func Logout(kv storage.KV) error {
	return kv.Remove(FlagKey)
}
