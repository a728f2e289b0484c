package resolver

import "errors"

// Family identifies an IP address family
type Family string

const (
	FamilyIPv4 Family = "ipv4"
	FamilyIPv6 Family = "ipv6"
)

// Address is a resolved IP address in textual form, tagged with its family
type Address struct {
	IP     string `json:"ip"`
	Family Family `json:"family"`
}

// ErrNoAddresses is returned when neither address family yields any address
var ErrNoAddresses = errors.New("could not resolve hostname")
