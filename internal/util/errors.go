package util

import "errors"

var (
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrModuleNotFound     = errors.New("Module not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrAlreadyLiked       = errors.New("Post already liked")
	ErrNotLiked           = errors.New("Post not liked")
	ErrNotEnoughModules   = errors.New("Complete at least 3 modules to get career recommendations")
)
