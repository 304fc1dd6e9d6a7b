package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidatePanicData(data PanicData) error {
	err := validation.ValidateStruct(&data,
		validation.Field(&data.Msg, validation.Required),
		validation.Field(&data.File, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), ErrInvalidParameter)
	}

	return nil
}

func ValidateWifiCredentials(cred WifiCredentials) error {
	if cred.SSID.IsEmpty() {
		return fmt.Errorf("ssid: cannot be blank%w", ErrInvalidParameter)
	}
	return nil
}
