package contract

import (
	"fmt"
	"math"

	"multiverse_net/sdk"
)

// ChannelRegistry manages entanglement channels between universe pairs.
type ChannelRegistry struct {
	base
}

func NewChannelRegistry(host *sdk.Host, owner sdk.Address) (*ChannelRegistry, error) {
	b, err := initContract(host, nsChannel, "channel", owner)
	if err != nil {
		return nil, err
	}
	return &ChannelRegistry{base: b}, nil
}

// CreateChannel opens an active channel between universeA and universeB.
func (c *ChannelRegistry) CreateChannel(universeA, universeB string, entanglementStrength int64, sender sdk.Address) (uint64, error) {
	if !c.isContractOwner(sender) {
		return 0, fmt.Errorf("create channel as %q: %w", sender, ErrUnauthorized)
	}
	id := nextID(c.host.State, counterKey(kChannel))
	ch := &Channel{
		ID:                   id,
		UniverseA:            universeA,
		UniverseB:            universeB,
		EntanglementStrength: entanglementStrength,
		Status:               ChannelActive,
	}
	c.save(ch)
	recordsCreated.WithLabelValues("channel").Inc()
	emitChannelCreatedEvent(c.host, ch)
	return id, nil
}

// UpdateChannelStatus overwrites the status with whatever string the owner passes.
func (c *ChannelRegistry) UpdateChannelStatus(id uint64, newStatus ChannelStatus, sender sdk.Address) (bool, error) {
	if !c.isContractOwner(sender) {
		return false, fmt.Errorf("update channel %d as %q: %w", id, sender, ErrUnauthorized)
	}
	ch, err := c.GetChannel(id)
	if err != nil {
		return false, err
	}
	old := ch.Status
	ch.Status = newStatus
	c.save(ch)
	emitChannelStatusEvent(c.host, id, old, newStatus)
	return true, nil
}

// StrengthenEntanglement adds increase to the channel strength. A negative increase weakens it.
func (c *ChannelRegistry) StrengthenEntanglement(id uint64, increase int64, sender sdk.Address) (bool, error) {
	if !c.isContractOwner(sender) {
		return false, fmt.Errorf("strengthen channel %d as %q: %w", id, sender, ErrUnauthorized)
	}
	ch, err := c.GetChannel(id)
	if err != nil {
		return false, err
	}
	if (increase > 0 && ch.EntanglementStrength > math.MaxInt64-increase) ||
		(increase < 0 && ch.EntanglementStrength < math.MinInt64-increase) {
		return false, fmt.Errorf("strengthen channel %d by %d: %w", id, increase, ErrAmountOverflow)
	}
	ch.EntanglementStrength += increase
	c.save(ch)
	emitChannelStrengthenedEvent(c.host, id, increase, ch.EntanglementStrength)
	return true, nil
}

// GetChannel loads channel id or fails with ErrInvalidChannel.
func (c *ChannelRegistry) GetChannel(id uint64) (*Channel, error) {
	ptr := c.host.State.Get(channelKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("channel %d: %w", id, ErrInvalidChannel)
	}
	ch, err := DecodeChannel([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode channel %d: %w", id, err)
	}
	return ch, nil
}

// ChannelCount is the number of channels ever created.
func (c *ChannelRegistry) ChannelCount() uint64 {
	return getCount(c.host.State, counterKey(kChannel))
}

func (c *ChannelRegistry) save(ch *Channel) {
	c.host.State.Set(channelKey(ch.ID), string(EncodeChannel(ch)))
}
