package repository

import "errors"

// ErrUserNotFound возвращается, если пользователь GitHub не найден в БД.
var ErrUserNotFound = errors.New("github user not found")
