package contract

import (
	"fmt"

	"multiverse_net/sdk"
)

// emitMessageMintedEvent writes a tiny "mm" line so watchers see a new message nft.
func emitMessageMintedEvent(h *sdk.Host, id uint64, by sdk.Address, channelID uint64) {
	h.Log(fmt.Sprintf("mm|id:%d|by:%s|ch:%d", id, by, channelID))
}

// emitMessageTransferredEvent records the ownership hop.
func emitMessageTransferredEvent(h *sdk.Host, id uint64, from, to sdk.Address) {
	h.Log(fmt.Sprintf("mt|id:%d|from:%s|to:%s", id, from, to))
}

// emitTokenMintedEvent includes the asset so multi-token hosts stay readable.
func emitTokenMintedEvent(h *sdk.Host, asset sdk.Asset, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf("tm|to:%s|am:%d|as:%s", to, amount, asset))
}

func emitTokenTransferredEvent(h *sdk.Host, asset sdk.Asset, from, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf("tt|from:%s|to:%s|am:%d|as:%s", from, to, amount, asset))
}

func emitTokenBurnedEvent(h *sdk.Host, asset sdk.Asset, from sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf("tb|from:%s|am:%d|as:%s", from, amount, asset))
}

// emitComputationInitiatedEvent logs the type but never the input buffer.
func emitComputationInitiatedEvent(h *sdk.Host, id uint64, computationType string) {
	h.Log(fmt.Sprintf("ci|id:%d|t:%s", id, computationType))
}

// emitComputationCompletedEvent logs the output size so replays can spot empty results.
func emitComputationCompletedEvent(h *sdk.Host, id uint64, outputLen int) {
	h.Log(fmt.Sprintf("cc|id:%d|out:%d", id, outputLen))
}

func emitChannelCreatedEvent(h *sdk.Host, ch *Channel) {
	h.Log(fmt.Sprintf("cn|id:%d|a:%s|b:%s|s:%d", ch.ID, ch.UniverseA, ch.UniverseB, ch.EntanglementStrength))
}

// emitChannelStatusEvent carries old and new status since status strings are free-form.
func emitChannelStatusEvent(h *sdk.Host, id uint64, old, new ChannelStatus) {
	h.Log(fmt.Sprintf("cs|id:%d|old:%s|new:%s", id, old, new))
}

func emitChannelStrengthenedEvent(h *sdk.Host, id uint64, increase, strength int64) {
	h.Log(fmt.Sprintf("ce|id:%d|inc:%d|s:%d", id, increase, strength))
}
