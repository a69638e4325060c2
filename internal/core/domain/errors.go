package domain

import "errors"

var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrCourseNotFound = errors.New("course not found")
var ErrInvalidToken = errors.New("invalid token")
