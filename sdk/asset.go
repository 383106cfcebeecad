package sdk

import "strings"

type Asset string

// AssetNIT is the network incentive token ticker used when nothing else is configured.
const AssetNIT Asset = "nit"

// AssetFromString lower-cases the ticker so NIT and nit land on the same balance keys.
func AssetFromString(s string) Asset {
	return Asset(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the raw ticker string for logging.
func (a Asset) String() string {
	return string(a)
}
