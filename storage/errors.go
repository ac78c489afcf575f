package storage

import "errors"

var ErrUploadFailed = errors.New("storage upload failed")
var ErrListFailed = errors.New("could not list vote records")
