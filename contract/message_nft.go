package contract

import (
	"fmt"

	"multiverse_net/sdk"
)

// MessageNFT mints inter-universe messages as NFTs. Only the owner may mint;
// after that each message follows its own holder.
type MessageNFT struct {
	base
}

// NewMessageNFT attaches the contract to host with owner as the only minter.
func NewMessageNFT(host *sdk.Host, owner sdk.Address) (*MessageNFT, error) {
	b, err := initContract(host, nsMessageNFT, "message_nft", owner)
	if err != nil {
		return nil, err
	}
	return &MessageNFT{base: b}, nil
}

// MintMessage stores a new message and records sender as its holder.
func (c *MessageNFT) MintMessage(senderUniverse, recipientUniverse string, contentHash []byte, channelID uint64, sender sdk.Address) (uint64, error) {
	if !c.isContractOwner(sender) {
		return 0, fmt.Errorf("mint message as %q: %w", sender, ErrUnauthorized)
	}
	st := c.host.State
	id := nextID(st, counterKey(kMessageMeta))
	msg := &Message{
		ID:                id,
		SenderUniverse:    senderUniverse,
		RecipientUniverse: recipientUniverse,
		ContentHash:       cloneBytes(contentHash),
		Timestamp:         c.host.Timestamp(),
		ChannelID:         channelID,
	}
	st.Set(messageKey(id), string(EncodeMessage(msg)))
	st.Set(messageOwnerKey(id), sender.String())
	recordsCreated.WithLabelValues("message").Inc()
	emitMessageMintedEvent(c.host, id, sender, channelID)
	return id, nil
}

// TransferMessage hands message id from one holder to another. The only check is
// that from is the current holder; an unknown id has no holder and fails the same way.
func (c *MessageNFT) TransferMessage(id uint64, from, to sdk.Address) (bool, error) {
	holder := c.OwnerOf(id)
	if holder.IsZero() || holder != from {
		return false, fmt.Errorf("transfer message %d from %q: %w", id, from, ErrUnauthorized)
	}
	if to.IsZero() {
		return false, fmt.Errorf("transfer message %d: recipient: %w", id, ErrEmptyAddress)
	}
	c.host.State.Set(messageOwnerKey(id), to.String())
	emitMessageTransferredEvent(c.host, id, from, to)
	return true, nil
}

// OwnerOf returns the current holder of id, "" when the message does not exist.
func (c *MessageNFT) OwnerOf(id uint64) sdk.Address {
	ptr := c.host.State.Get(messageOwnerKey(id))
	if ptr == nil {
		return ""
	}
	return sdk.Address(*ptr)
}

// GetMessage loads message id.
func (c *MessageNFT) GetMessage(id uint64) (*Message, error) {
	ptr := c.host.State.Get(messageKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("message %d: %w", id, ErrInvalidMessage)
	}
	msg, err := DecodeMessage([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode message %d: %w", id, err)
	}
	return msg, nil
}

// LastMessageID is the highest id handed out so far, 0 before the first mint.
func (c *MessageNFT) LastMessageID() uint64 {
	return getCount(c.host.State, counterKey(kMessageMeta))
}
