package contract

import "multiverse_net/sdk"

// Amount is a token quantity. Unsigned so a balance can never dip below zero.
type Amount uint64

// ComputationStatus is free text; the registry sets pending and completed itself
// but never validates what it stores.
type ComputationStatus string

const (
	ComputationPending   ComputationStatus = "pending"
	ComputationCompleted ComputationStatus = "completed"
)

// ChannelStatus is free text as well. Channels start active, callers may set anything afterwards.
type ChannelStatus string

const (
	ChannelActive   ChannelStatus = "active"
	ChannelInactive ChannelStatus = "inactive"
)

// Message is one inter-universe message NFT.
type Message struct {
	ID                uint64
	SenderUniverse    string
	RecipientUniverse string
	ContentHash       []byte
	// Timestamp is host time in unix milliseconds at mint.
	Timestamp int64
	ChannelID uint64
}

// Computation is a registered quantum computation job and its result buffer.
type Computation struct {
	ID              uint64
	ComputationType string
	InputData       []byte
	OutputData      []byte
	Status          ComputationStatus
}

// Channel links two universes with an entanglement strength.
type Channel struct {
	ID                   uint64
	UniverseA            string
	UniverseB            string
	EntanglementStrength int64
	Status               ChannelStatus
}

// ContractConfig is the per-contract config persisted at construction.
type ContractConfig struct {
	Kind  string
	Owner sdk.Address
}

// cloneBytes keeps callers from aliasing stored buffers. nil and empty both come back empty.
func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
