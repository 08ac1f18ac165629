// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cookies

import (
	"identikit/cli/internal/keychain"
)

// KeychainStore persists cookie snapshots in the OS keychain.
type KeychainStore struct{}

func (KeychainStore) Save(data []byte) error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveSessionCookies(data)
}

func (KeychainStore) Load() ([]byte, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return km.LoadSessionCookies()
}

func (KeychainStore) Clear() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearSessionCookies()
}
