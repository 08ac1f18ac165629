// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package identity

// Endpoints contains the API endpoint paths, relative to the base URL.
// Zero fields fall back to the standard identity API layout.
type Endpoints struct {
	Register string
	Login    string
	Info     string
	Roles    string
	Logout   string
}

// DefaultEndpoints returns the standard identity API paths.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Register: "Identity/register",
		Login:    "Identity/login",
		Info:     "Identity/info",
		Roles:    "Identity/roles",
		Logout:   "Identity/logout",
	}
}

// withDefaults fills empty fields from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Register == "" {
		e.Register = d.Register
	}
	if e.Login == "" {
		e.Login = d.Login
	}
	if e.Info == "" {
		e.Info = d.Info
	}
	if e.Roles == "" {
		e.Roles = d.Roles
	}
	if e.Logout == "" {
		e.Logout = d.Logout
	}
	return e
}
