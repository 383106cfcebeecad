package contract_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiverse_net/contract"
	"multiverse_net/sdk"
)

func TestMintMessage(t *testing.T) {
	ct := SetupContractTest(t)

	id := mintMessage(t, ct, "Universe A", "Universe B", 1)
	assert.Equal(t, "1", id)

	msg, err := ct.Messages.GetMessage(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), msg.ID)
	assert.Equal(t, "Universe A", msg.SenderUniverse)
	assert.Equal(t, "Universe B", msg.RecipientUniverse)
	assert.Equal(t, sampleHash, hex.EncodeToString(msg.ContentHash))
	assert.Equal(t, sdk.MockTimestamp.UnixMilli(), msg.Timestamp)
	assert.Equal(t, uint64(1), msg.ChannelID)
	assert.Equal(t, ownerAddress, ct.Messages.OwnerOf(1))
	assert.Equal(t, "mm|id:1|by:system:owner|ch:1", ct.Events.Last())
}

func TestMintMessageIdsIncrease(t *testing.T) {
	ct := SetupContractTest(t)
	for want := 1; want <= 5; want++ {
		assert.Equal(t, fmt.Sprint(want), mintMessage(t, ct, "A", "B", 0))
	}
	assert.Equal(t, uint64(5), ct.Messages.LastMessageID())
}

func TestMintMessageUnauthorized(t *testing.T) {
	ct := SetupContractTest(t)

	res := CallContractUnchanged(t, ct, "message_mint", "A|B|"+sampleHash+"|1", alice)
	assert.ErrorIs(t, res.Err, contract.ErrUnauthorized)
	assert.Equal(t, uint64(0), ct.Messages.LastMessageID())

	// the next successful mint still gets id 1
	assert.Equal(t, "1", mintMessage(t, ct, "A", "B", 1))
}

func TestMintMessageEmptyFields(t *testing.T) {
	ct := SetupContractTest(t)

	res := CallContract(t, ct, "message_mint", "||", ownerAddress, false)
	assert.ErrorIs(t, res.Err, contract.ErrInvalidPayload)

	CallContract(t, ct, "message_mint", "|||0", ownerAddress, true)
	msg, err := ct.Messages.GetMessage(1)
	require.NoError(t, err)
	assert.Empty(t, msg.SenderUniverse)
	assert.Empty(t, msg.ContentHash)
}

func TestTransferMessage(t *testing.T) {
	ct := SetupContractTest(t)
	id := mintMessage(t, ct, "A", "B", 1)

	res := CallContract(t, ct, "message_transfer", id+"|"+alice.String(), ownerAddress, true)
	assert.Equal(t, "true", res.Ret)
	assert.Equal(t, alice, ct.Messages.OwnerOf(1))
	assert.Equal(t, "mt|id:1|from:system:owner|to:hive:alice", ct.Events.Last())

	// the contract owner loses control once the message moved
	res = CallContractUnchanged(t, ct, "message_transfer", id+"|"+bob.String(), ownerAddress)
	assert.ErrorIs(t, res.Err, contract.ErrUnauthorized)

	CallContract(t, ct, "message_transfer", id+"|"+bob.String(), alice, true)
	assert.Equal(t, bob, ct.Messages.OwnerOf(1))
}

func TestTransferMessageNonHolder(t *testing.T) {
	ct := SetupContractTest(t)
	id := mintMessage(t, ct, "A", "B", 1)

	res := CallContractUnchanged(t, ct, "message_transfer", id+"|"+bob.String(), alice)
	assert.ErrorIs(t, res.Err, contract.ErrUnauthorized)
	assert.Equal(t, ownerAddress, ct.Messages.OwnerOf(1))
}

func TestTransferUnknownMessage(t *testing.T) {
	ct := SetupContractTest(t)

	res := CallContractUnchanged(t, ct, "message_transfer", "42|"+bob.String(), ownerAddress)
	assert.ErrorIs(t, res.Err, contract.ErrUnauthorized)

	// nobody, not even an empty sender, holds a missing message
	ok, err := ct.Messages.TransferMessage(42, "", bob)
	assert.False(t, ok)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)
}

func TestTransferMessageEmptyRecipient(t *testing.T) {
	ct := SetupContractTest(t)
	id := mintMessage(t, ct, "A", "B", 1)

	res := CallContractUnchanged(t, ct, "message_transfer", id+"|  ", ownerAddress)
	assert.ErrorIs(t, res.Err, contract.ErrEmptyAddress)
}

func TestTransferMessageToSelf(t *testing.T) {
	ct := SetupContractTest(t)
	id := mintMessage(t, ct, "A", "B", 1)

	CallContract(t, ct, "message_transfer", id+"|"+ownerAddress.String(), ownerAddress, true)
	assert.Equal(t, ownerAddress, ct.Messages.OwnerOf(1))
}

func TestGetMessage(t *testing.T) {
	ct := SetupContractTest(t)
	id := mintMessage(t, ct, "Universe A", "Universe B", 7)

	res := CallContract(t, ct, "message_get", id, carol, true)
	want := fmt.Sprintf(`{"id":1,"senderUniverse":"Universe A","recipientUniverse":"Universe B","contentHash":"%s","timestamp":%d,"channelId":7,"owner":"system:owner"}`,
		sampleHash, sdk.MockTimestamp.UnixMilli())
	assert.Equal(t, want, res.Ret)

	res = CallContract(t, ct, "message_get", "2", carol, false)
	assert.ErrorIs(t, res.Err, contract.ErrNotFound)
	assert.ErrorIs(t, res.Err, contract.ErrInvalidMessage)
}

func TestGetMessageReturnsCopy(t *testing.T) {
	ct := SetupContractTest(t)
	mintMessage(t, ct, "A", "B", 1)

	msg, err := ct.Messages.GetMessage(1)
	require.NoError(t, err)
	msg.ContentHash[0] = 0xff

	again, err := ct.Messages.GetMessage(1)
	require.NoError(t, err)
	assert.Equal(t, sampleHash, hex.EncodeToString(again.ContentHash))
}
