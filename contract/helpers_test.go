package contract_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiverse_net/contract"
	"multiverse_net/sdk"
)

const (
	ownerAddress sdk.Address = "system:owner"
	alice        sdk.Address = "hive:alice"
	bob          sdk.Address = "hive:bob"
	carol        sdk.Address = "hive:carol"
	outsider     sdk.Address = "hive:outsider"
)

// sampleHash is a 32 byte content hash in hex.
const sampleHash = "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"

// contractTest bundles a simulator with the in-memory pieces tests inspect.
type contractTest struct {
	*contract.Simulator
	State  *sdk.MemoryState
	Events *sdk.RecordingLogger
}

// Setup an instance of a test with ownerAddress owning every contract.
func SetupContractTest(t *testing.T) *contractTest {
	t.Helper()
	host := sdk.NewMockHost()
	sim, err := contract.NewSimulator(host, contract.SimulatorOptions{Owner: ownerAddress})
	require.NoError(t, err)
	return &contractTest{
		Simulator: sim,
		State:     host.State.(*sdk.MemoryState),
		Events:    host.Logger.(*sdk.RecordingLogger),
	}
}

// CallContract executes a contract action and asserts the outcome.
func CallContract(t *testing.T, ct *contractTest, action, payload string, sender sdk.Address, expectedResult bool) contract.TxResult {
	t.Helper()
	result := ct.Call(action, payload, sender)
	if expectedResult {
		assert.True(t, result.Success, "Contract action failed with "+result.Ret)
	} else {
		assert.False(t, result.Success, "Contract action did not fail (as expected)")
	}
	return result
}

// CallContractUnchanged runs a call that must fail and asserts it left state and the event log alone.
func CallContractUnchanged(t *testing.T, ct *contractTest, action, payload string, sender sdk.Address) contract.TxResult {
	t.Helper()
	before := ct.State.Snapshot()
	events := len(ct.Events.Lines())
	result := CallContract(t, ct, action, payload, sender, false)
	assert.Equal(t, before, ct.State.Snapshot(), "failed %s changed state", action)
	assert.Len(t, ct.Events.Lines(), events, "failed %s emitted events", action)
	return result
}

// mintMessage mints a message as the owner and returns its id.
func mintMessage(t *testing.T, ct *contractTest, senderUniverse, recipientUniverse string, channelID uint64) string {
	t.Helper()
	res := CallContract(t, ct, "message_mint", fmt.Sprintf("%s|%s|%s|%d", senderUniverse, recipientUniverse, sampleHash, channelID), ownerAddress, true)
	return res.Ret
}

func mintTokens(t *testing.T, ct *contractTest, amount uint64, to sdk.Address) {
	t.Helper()
	CallContract(t, ct, "token_mint", fmt.Sprintf("%d|%s", amount, to), ownerAddress, true)
}

// sumBalances adds up the balances of accounts.
func sumBalances(ct *contractTest, accounts ...sdk.Address) contract.Amount {
	var total contract.Amount
	for _, a := range accounts {
		total += ct.Token.BalanceOf(a)
	}
	return total
}
