// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// This file persists the serialized last-known state in the OS keychain via
// internal/keychain.

package auth

import (
	"encoding/json"

	"identikit/cli/internal/keychain"
	"identikit/cli/internal/logging"
)

// LoadState reads the auth state from the keychain. Missing state yields the
// zero value.
func LoadState() (State, error) {
	var s State
	km, err := keychain.GetManager()
	if err != nil {
		return s, err
	}

	data, err := km.LoadAuthState()
	if err != nil {
		logging.Logger.Debug().Err(err).Msg("no stored auth state")
		return s, err
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// SaveState writes the auth state to the keychain.
func SaveState(s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveAuthState(b)
}

// ClearState removes the stored auth state.
func ClearState() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuthState()
}
