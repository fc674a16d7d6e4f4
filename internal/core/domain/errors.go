package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrProductNotFound = errors.New("product not found")
var ErrInvalidPrice = errors.New("price must be greater than zero")
