package model

import "github.com/internet-of-plants/iop/pkg/fixed"

const (
	AuthTokenSize       = 64
	NetworkNameSize     = 32
	NetworkPasswordSize = 64
	MD5HashSize         = 32
	MacAddressSize      = 17
)

type authTokenCapacity struct{}

func (authTokenCapacity) Capacity() int { return AuthTokenSize }

type networkNameCapacity struct{}

func (networkNameCapacity) Capacity() int { return NetworkNameSize }

type networkPasswordCapacity struct{}

func (networkPasswordCapacity) Capacity() int { return NetworkPasswordSize }

type md5HashCapacity struct{}

func (md5HashCapacity) Capacity() int { return MD5HashSize }

type macAddressCapacity struct{}

func (macAddressCapacity) Capacity() int { return MacAddressSize }

// AuthToken is the opaque credential the server hands out on login.
type AuthToken = fixed.Storage[authTokenCapacity]

// NetworkName is a Wi-Fi SSID.
type NetworkName = fixed.Storage[networkNameCapacity]

type NetworkPassword = fixed.Storage[networkPasswordCapacity]

// MD5Hash is the hex encoded MD5 of the running firmware image.
type MD5Hash = fixed.Storage[md5HashCapacity]

// MacAddress is the textual form "AA:BB:CC:DD:EE:FF".
type MacAddress = fixed.Storage[macAddressCapacity]

func NewAuthToken(raw []byte) (AuthToken, error) {
	return fixed.StorageFrom[authTokenCapacity](raw)
}

func NewNetworkName(raw []byte) (NetworkName, error) {
	return fixed.StorageFrom[networkNameCapacity](raw)
}

func NewNetworkPassword(raw []byte) (NetworkPassword, error) {
	return fixed.StorageFrom[networkPasswordCapacity](raw)
}

func NewMD5Hash(raw string) (MD5Hash, error) {
	return fixed.StorageFromString[md5HashCapacity](raw)
}

func NewMacAddress(raw string) (MacAddress, error) {
	return fixed.StorageFromString[macAddressCapacity](raw)
}
