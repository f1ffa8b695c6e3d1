// Package auth holds the fixed account table. This is deliberately not
// a security boundary: credentials are static and compared in plain
// text, matching a single-device personal app.
package auth

import (
	"errors"

	"github.com/yassink/reclaim/internal/progress"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type account struct {
	username string
	password string
	id       string
	name     string
}

var accounts = []account{
	{username: "yassin", password: "123", id: "1", name: "Yassin"},
	{username: "ahmed", password: "123", id: "2", name: "Ahmed"},
}

// Login checks the credentials and returns the username plus a seed
// profile with zeroed counters for first-time logins.
func Login(username, password string) (string, progress.Profile, error) {
	for _, a := range accounts {
		if a.username == username && a.password == password {
			return a.username, progress.Profile{ID: a.id, Name: a.name}, nil
		}
	}
	return "", progress.Profile{}, ErrInvalidCredentials
}
