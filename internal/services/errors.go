package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrWatchedNotFound    = errors.New("movie not found in your watchlist")
	ErrInvalidSwipe       = errors.New(`swipe must be "left" or "right"`)
)
