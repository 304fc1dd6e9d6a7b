package model_test

import (
	"strings"
	"testing"

	"github.com/internet-of-plants/iop/pkg/fixed"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedStorageCapacities(t *testing.T) {
	token, err := model.NewAuthToken([]byte(strings.Repeat("t", model.AuthTokenSize)))
	require.NoError(t, err)
	assert.Equal(t, model.AuthTokenSize, token.Len())

	_, err = model.NewAuthToken([]byte(strings.Repeat("t", model.AuthTokenSize+1)))
	assert.ErrorIs(t, err, fixed.ErrOverflow)

	_, err = model.NewNetworkName([]byte(strings.Repeat("n", model.NetworkNameSize+1)))
	assert.ErrorIs(t, err, fixed.ErrOverflow)

	_, err = model.NewNetworkPassword([]byte(strings.Repeat("p", model.NetworkPasswordSize+1)))
	assert.ErrorIs(t, err, fixed.ErrOverflow)

	mac, err := model.NewMacAddress("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	assert.Equal(t, model.MacAddressSize, mac.Len())

	_, err = model.NewMD5Hash(strings.Repeat("0", model.MD5HashSize+1))
	assert.ErrorIs(t, err, fixed.ErrOverflow)
}

func TestValidatePanicData(t *testing.T) {
	err := model.ValidatePanicData(model.PanicData{Msg: "boom", File: "main.go", Line: 10, Func: "main"})
	assert.NoError(t, err)

	err = model.ValidatePanicData(model.PanicData{File: "main.go"})
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestValidateWifiCredentials(t *testing.T) {
	ssid, _ := model.NewNetworkName([]byte("farm"))
	pass, _ := model.NewNetworkPassword([]byte("secret"))

	assert.NoError(t, model.ValidateWifiCredentials(model.WifiCredentials{SSID: ssid, Password: pass}))
	assert.ErrorIs(t, model.ValidateWifiCredentials(model.WifiCredentials{Password: pass}), model.ErrInvalidParameter)
}
