package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrStorageError = errors.New("")     // Base error for persistent storage

// Storage errors
var ErrCorruptedToken = fmt.Errorf("stored auth token is corrupted%w", ErrStorageError)
var ErrCorruptedWifiCredentials = fmt.Errorf("stored wifi credentials are corrupted%w", ErrStorageError)
