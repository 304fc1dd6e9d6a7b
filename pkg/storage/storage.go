package storage

import (
	"context"

	"github.com/internet-of-plants/iop/pkg/model"
)

// Storage persists the device credentials across restarts.
//
// Loads report whether a value was stored. Stored values that no longer fit
// their type are reported as model.ErrCorruptedToken or
// model.ErrCorruptedWifiCredentials.
type Storage interface {
	Token(ctx context.Context) (model.AuthToken, bool, error)
	SetToken(ctx context.Context, token model.AuthToken) error
	RemoveToken(ctx context.Context) error

	WifiCredentials(ctx context.Context) (model.WifiCredentials, bool, error)
	SetWifiCredentials(ctx context.Context, credentials model.WifiCredentials) error
	RemoveWifiCredentials(ctx context.Context) error
}
