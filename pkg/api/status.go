package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/internet-of-plants/iop/pkg/network"
)

// NetworkStatus is the outcome of an API call. The set is closed: callers are
// expected to switch over every value.
type NetworkStatus int

const (
	StatusOK NetworkStatus = iota
	// StatusForbidden means the auth token was refused. A new one is needed.
	StatusForbidden
	// StatusConnectionIssues is the only status worth retrying.
	StatusConnectionIssues
	// StatusClientBufferOverflow means the request did not fit its budget and
	// was never sent. Retrying can't help; the firmware needs fixing.
	StatusClientBufferOverflow
	StatusBrokenServer
	// StatusMustUpgrade means the server refuses this firmware version.
	StatusMustUpgrade
)

var statusNames = map[NetworkStatus]string{
	StatusOK:                   "OK",
	StatusForbidden:            "FORBIDDEN",
	StatusConnectionIssues:     "CONNECTION_ISSUES",
	StatusClientBufferOverflow: "CLIENT_BUFFER_OVERFLOW",
	StatusBrokenServer:         "BROKEN_SERVER",
	StatusMustUpgrade:          "MUST_UPGRADE",
}

// Statuses lists every NetworkStatus.
func Statuses() []NetworkStatus {
	return []NetworkStatus{
		StatusOK,
		StatusForbidden,
		StatusConnectionIssues,
		StatusClientBufferOverflow,
		StatusBrokenServer,
		StatusMustUpgrade,
	}
}

func (s NetworkStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("NetworkStatus(%d)", int(s))
}

// ClassifyResponse reduces the result of a transport call to a NetworkStatus.
func ClassifyResponse(resp network.Response, err error) NetworkStatus {
	if err != nil {
		if errors.Is(err, network.ErrPayloadTooLarge) || errors.Is(err, network.ErrSink) {
			return StatusBrokenServer
		}
		return StatusConnectionIssues
	}

	switch code := resp.Code; {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return StatusForbidden
	case code == http.StatusPreconditionFailed || code == http.StatusUpgradeRequired:
		return StatusMustUpgrade
	case code >= 200 && code < 300:
		return StatusOK
	default:
		return StatusBrokenServer
	}
}
