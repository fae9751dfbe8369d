// Package auth manages the Google OAuth2 installed-application flow and the
// on-disk token store for the Calendar API.
package auth
