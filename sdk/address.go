package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

// Address identifies a caller. The simulators treat it as an opaque string
// (CONTRACT_OWNER, USER_A, hive:alice) and only ever compare it for equality.
type Address string

// AddressFromString trims surrounding whitespace so payload parsing does not produce near-duplicate ids.
func AddressFromString(s string) Address {
	return Address(strings.TrimSpace(s))
}

// String returns the literal representation of the address.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is empty. An empty address never owns anything.
func (a Address) IsZero() bool {
	return a == ""
}

// Domain checks the prefix to guess if we deal with a user, contract or system identity.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}
