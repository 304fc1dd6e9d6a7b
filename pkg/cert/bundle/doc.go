// Package bundle holds the trusted roots compiled into the firmware.
//
// certificates.go is generated from roots.pem; edit roots.pem and regenerate.
package bundle

//go:generate go run ../../../app/iop_device cert-gen --bundle roots.pem --out certificates.go --package bundle
