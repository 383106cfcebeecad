package contract

import (
	"encoding/hex"

	"github.com/CosmWasm/tinyjson/jwriter"

	"multiverse_net/sdk"
)

// Views are the JSON shapes *_get actions return. Binary buffers go out hex encoded.

type jsonMarshaler interface {
	MarshalTinyJSON(w *jwriter.Writer)
}

// toJSON renders v with tinyjson's writer, no reflection involved.
func toJSON(v jsonMarshaler) (string, error) {
	w := jwriter.Writer{}
	v.MarshalTinyJSON(&w)
	b, err := w.BuildBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MessageView is a message plus its current holder.
type MessageView struct {
	Message *Message
	Owner   sdk.Address
}

func (v MessageView) MarshalTinyJSON(w *jwriter.Writer) {
	m := v.Message
	w.RawString(`{"id":`)
	w.Uint64(m.ID)
	w.RawString(`,"senderUniverse":`)
	w.String(m.SenderUniverse)
	w.RawString(`,"recipientUniverse":`)
	w.String(m.RecipientUniverse)
	w.RawString(`,"contentHash":`)
	w.String(hex.EncodeToString(m.ContentHash))
	w.RawString(`,"timestamp":`)
	w.Int64(m.Timestamp)
	w.RawString(`,"channelId":`)
	w.Uint64(m.ChannelID)
	w.RawString(`,"owner":`)
	w.String(v.Owner.String())
	w.RawByte('}')
}

func (c *Computation) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(c.ID)
	w.RawString(`,"computationType":`)
	w.String(c.ComputationType)
	w.RawString(`,"inputData":`)
	w.String(hex.EncodeToString(c.InputData))
	w.RawString(`,"outputData":`)
	w.String(hex.EncodeToString(c.OutputData))
	w.RawString(`,"status":`)
	w.String(string(c.Status))
	w.RawByte('}')
}

func (ch *Channel) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"id":`)
	w.Uint64(ch.ID)
	w.RawString(`,"universeA":`)
	w.String(ch.UniverseA)
	w.RawString(`,"universeB":`)
	w.String(ch.UniverseB)
	w.RawString(`,"entanglementStrength":`)
	w.Int64(ch.EntanglementStrength)
	w.RawString(`,"status":`)
	w.String(string(ch.Status))
	w.RawByte('}')
}

// BalanceView answers token_balance and token_supply.
type BalanceView struct {
	Asset   sdk.Asset
	Account sdk.Address
	Amount  Amount
}

func (v BalanceView) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"asset":`)
	w.String(v.Asset.String())
	if !v.Account.IsZero() {
		w.RawString(`,"account":`)
		w.String(v.Account.String())
	}
	w.RawString(`,"amount":`)
	w.Uint64(uint64(v.Amount))
	w.RawByte('}')
}
