package contract_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiverse_net/contract"
	"multiverse_net/sdk"
)

func TestTokenMint(t *testing.T) {
	ct := SetupContractTest(t)

	res := CallContract(t, ct, "token_mint", "100|"+alice.String(), ownerAddress, true)
	assert.Equal(t, "true", res.Ret)
	assert.Equal(t, contract.Amount(100), ct.Token.BalanceOf(alice))
	assert.Equal(t, contract.Amount(100), ct.Token.TotalSupply())
	assert.Equal(t, "tm|to:hive:alice|am:100|as:nit", ct.Events.Last())
}

func TestTokenMintUnauthorized(t *testing.T) {
	ct := SetupContractTest(t)

	res := CallContractUnchanged(t, ct, "token_mint", "100|"+alice.String(), alice)
	assert.ErrorIs(t, res.Err, contract.ErrUnauthorized)
	assert.Equal(t, contract.Amount(0), ct.Token.TotalSupply())
}

func TestTokenMintOverflow(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, math.MaxUint64-10, alice)

	res := CallContractUnchanged(t, ct, "token_mint", "11|"+bob.String(), ownerAddress)
	assert.ErrorIs(t, res.Err, contract.ErrAmountOverflow)

	mintTokens(t, ct, 10, bob)
	assert.Equal(t, contract.Amount(math.MaxUint64), ct.Token.TotalSupply())
}

func TestTokenMintEmptyRecipient(t *testing.T) {
	ct := SetupContractTest(t)
	res := CallContractUnchanged(t, ct, "token_mint", "100| ", ownerAddress)
	assert.ErrorIs(t, res.Err, contract.ErrEmptyAddress)
}

func TestTokenTransfer(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 100, alice)

	CallContract(t, ct, "token_transfer", "30|"+bob.String(), alice, true)
	assert.Equal(t, contract.Amount(70), ct.Token.BalanceOf(alice))
	assert.Equal(t, contract.Amount(30), ct.Token.BalanceOf(bob))
	assert.Equal(t, contract.Amount(100), ct.Token.TotalSupply())
	assert.Equal(t, "tt|from:hive:alice|to:hive:bob|am:30|as:nit", ct.Events.Last())
}

func TestTokenTransferInsufficientBalance(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 10, alice)

	res := CallContractUnchanged(t, ct, "token_transfer", "11|"+bob.String(), alice)
	assert.ErrorIs(t, res.Err, contract.ErrInsufficientBalance)

	// unknown accounts hold nothing
	res = CallContractUnchanged(t, ct, "token_transfer", "1|"+bob.String(), outsider)
	assert.ErrorIs(t, res.Err, contract.ErrInsufficientBalance)
}

func TestTokenTransferWholeBalance(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 50, alice)

	CallContract(t, ct, "token_transfer", "50|"+bob.String(), alice, true)
	assert.Equal(t, contract.Amount(0), ct.Token.BalanceOf(alice))
	assert.Equal(t, contract.Amount(50), ct.Token.BalanceOf(bob))
}

func TestTokenTransferToSelfAndZero(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 50, alice)
	before := ct.State.Snapshot()

	CallContract(t, ct, "token_transfer", "20|"+alice.String(), alice, true)
	CallContract(t, ct, "token_transfer", "0|"+bob.String(), alice, true)
	// an empty account may send nothing
	CallContract(t, ct, "token_transfer", "0|"+bob.String(), outsider, true)

	assert.Equal(t, before, ct.State.Snapshot())
	assert.Equal(t, contract.Amount(50), ct.Token.BalanceOf(alice))
}

func TestTokenBurn(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 100, alice)

	CallContract(t, ct, "token_burn", "40", alice, true)
	assert.Equal(t, contract.Amount(60), ct.Token.BalanceOf(alice))
	assert.Equal(t, contract.Amount(60), ct.Token.TotalSupply())
	assert.Equal(t, "tb|from:hive:alice|am:40|as:nit", ct.Events.Last())

	res := CallContractUnchanged(t, ct, "token_burn", "61", alice)
	assert.ErrorIs(t, res.Err, contract.ErrInsufficientBalance)
}

func TestTokenBurnFromOtherAccount(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 100, alice)

	// burning carries no caller check
	CallContract(t, ct, "token_burn", "25|"+alice.String(), outsider, true)
	assert.Equal(t, contract.Amount(75), ct.Token.BalanceOf(alice))
	assert.Equal(t, contract.Amount(75), ct.Token.TotalSupply())
}

func TestTokenBalanceAndSupplyViews(t *testing.T) {
	ct := SetupContractTest(t)
	mintTokens(t, ct, 5, alice)

	res := CallContract(t, ct, "token_balance", "", alice, true)
	assert.Equal(t, `{"asset":"nit","account":"hive:alice","amount":5}`, res.Ret)

	res = CallContract(t, ct, "token_balance", bob.String(), alice, true)
	assert.Equal(t, `{"asset":"nit","account":"hive:bob","amount":0}`, res.Ret)

	res = CallContract(t, ct, "token_supply", "", outsider, true)
	assert.Equal(t, `{"asset":"nit","amount":5}`, res.Ret)
}

func TestTokenSupplyMatchesBalances(t *testing.T) {
	ct := SetupContractTest(t)
	accounts := []sdk.Address{alice, bob, carol, outsider}

	steps := []struct {
		action  string
		payload string
		sender  sdk.Address
	}{
		{"token_mint", "1000|" + alice.String(), ownerAddress},
		{"token_mint", "250|" + bob.String(), ownerAddress},
		{"token_transfer", "300|" + carol.String(), alice},
		{"token_transfer", "400|" + carol.String(), bob}, // fails
		{"token_burn", "50", carol},
		{"token_transfer", "250|" + alice.String(), bob},
		{"token_burn", "2000|" + alice.String(), outsider}, // fails
		{"token_mint", "7|" + outsider.String(), alice},    // fails
		{"token_transfer", "250|" + outsider.String(), carol},
		{"token_burn", "250", outsider},
	}
	for i, s := range steps {
		ct.Call(s.action, s.payload, s.sender)
		assert.Equal(t, ct.Token.TotalSupply(), sumBalances(ct, accounts...), "step %d (%s)", i, s.action)
	}
	assert.Equal(t, contract.Amount(950), ct.Token.TotalSupply())
	assert.Equal(t, contract.Amount(0), ct.Token.BalanceOf(outsider))
}

func TestTokenCustomAsset(t *testing.T) {
	host := sdk.NewMockHost()
	tok, err := contract.NewToken(host, ownerAddress, sdk.AssetFromString(" QNT "))
	require.NoError(t, err)

	ok, err := tok.Mint(9, alice, ownerAddress)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sdk.Asset("qnt"), tok.Asset())
	assert.Equal(t, contract.Amount(9), tok.BalanceOf(alice))

	// the default ledger on the same host does not see qnt balances
	nit, err := contract.NewToken(host, ownerAddress, "")
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), nit.BalanceOf(alice))
}

func TestTokenBadAmount(t *testing.T) {
	ct := SetupContractTest(t)
	for _, amount := range []string{"-1", "abc", "", fmt.Sprint(uint64(math.MaxUint64)) + "0"} {
		res := CallContractUnchanged(t, ct, "token_mint", amount+"|"+alice.String(), ownerAddress)
		assert.ErrorIs(t, res.Err, contract.ErrInvalidPayload, amount)
	}
}
