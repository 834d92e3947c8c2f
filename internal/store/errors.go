package store

import "errors"

var ErrPreferenceNotFound = errors.New("preference not found")
