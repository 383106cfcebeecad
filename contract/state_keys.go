package contract

import "multiverse_net/sdk"

// Storage key prefixes. Every record family owns one byte so the four contracts
// can share a single host without colliding.
const (
	// kContractConfig stores the pipe-delimited contract config, suffixed by the namespace byte.
	kContractConfig byte = 0x00
	// kCounter holds decimal id counters, suffixed by the record family byte.
	kCounter byte = 0x01
	// kMessageMeta stores encoded Message records.
	kMessageMeta byte = 0x10
	// kMessageOwner stores the current owner address of a message NFT.
	kMessageOwner byte = 0x11
	// kTokenBalance stores decimal balances per asset and account.
	kTokenBalance byte = 0x20
	// kTokenSupply stores the decimal total supply per asset.
	kTokenSupply byte = 0x21
	// kComputation stores encoded Computation records.
	kComputation byte = 0x30
	// kChannel stores encoded Channel records.
	kChannel byte = 0x40
)

// packU64LEInline writes a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// recordKey builds prefix|id for any id-addressed record.
func recordKey(prefix byte, id uint64) string {
	var buf [9]byte
	buf[0] = prefix
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// configKey keeps one config blob per contract namespace.
func configKey(ns byte) string {
	return string([]byte{kContractConfig, ns})
}

// counterKey keeps one id counter per record family.
func counterKey(family byte) string {
	return string([]byte{kCounter, family})
}

func messageKey(id uint64) string {
	return recordKey(kMessageMeta, id)
}

func messageOwnerKey(id uint64) string {
	return recordKey(kMessageOwner, id)
}

func computationKey(id uint64) string {
	return recordKey(kComputation, id)
}

func channelKey(id uint64) string {
	return recordKey(kChannel, id)
}

// balanceKey mixes asset and account: kTokenBalance|len(asset)|asset|address.
func balanceKey(asset sdk.Asset, addr sdk.Address) string {
	as := asset.String()
	buf := make([]byte, 0, 2+len(as)+len(addr))
	buf = append(buf, kTokenBalance, byte(len(as)))
	buf = append(buf, as...)
	buf = append(buf, addr.String()...)
	return string(buf)
}

func supplyKey(asset sdk.Asset) string {
	return string(kTokenSupply) + asset.String()
}
