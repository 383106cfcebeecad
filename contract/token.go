package contract

import (
	"fmt"
	"math"

	"multiverse_net/sdk"
)

// Token is the network incentive token ledger: per-account balances plus a total
// supply that always equals their sum.
type Token struct {
	base
	asset sdk.Asset
}

// NewToken attaches a ledger for asset with minter as the only account allowed to mint.
func NewToken(host *sdk.Host, minter sdk.Address, asset sdk.Asset) (*Token, error) {
	if asset == "" {
		asset = sdk.AssetNIT
	}
	b, err := initContract(host, nsToken, "token", minter)
	if err != nil {
		return nil, err
	}
	return &Token{base: b, asset: asset}, nil
}

// Asset returns the ticker this ledger tracks.
func (t *Token) Asset() sdk.Asset {
	return t.asset
}

// Mint credits amount to recipient and grows the supply.
func (t *Token) Mint(amount Amount, recipient, sender sdk.Address) (bool, error) {
	if !t.isContractOwner(sender) {
		return false, fmt.Errorf("mint %d as %q: %w", amount, sender, ErrUnauthorized)
	}
	if recipient.IsZero() {
		return false, fmt.Errorf("mint %d: recipient: %w", amount, ErrEmptyAddress)
	}
	supply := t.TotalSupply()
	// every balance is <= supply, so checking the supply covers the recipient too
	if amount > Amount(math.MaxUint64)-supply {
		return false, fmt.Errorf("mint %d: %w", amount, ErrAmountOverflow)
	}
	st := t.host.State
	setAmount(st, balanceKey(t.asset, recipient), t.BalanceOf(recipient)+amount)
	setAmount(st, supplyKey(t.asset), supply+amount)
	emitTokenMintedEvent(t.host, t.asset, recipient, amount)
	return true, nil
}

// Transfer moves amount from sender to recipient. Holding the balance is the only check.
// Self transfers and zero amounts succeed without touching state.
func (t *Token) Transfer(amount Amount, sender, recipient sdk.Address) (bool, error) {
	senderBalance := t.BalanceOf(sender)
	if senderBalance < amount {
		return false, fmt.Errorf("transfer %d from %q (balance %d): %w", amount, sender, senderBalance, ErrInsufficientBalance)
	}
	if recipient.IsZero() {
		return false, fmt.Errorf("transfer %d: recipient: %w", amount, ErrEmptyAddress)
	}
	if sender != recipient && amount > 0 {
		st := t.host.State
		setAmount(st, balanceKey(t.asset, sender), senderBalance-amount)
		setAmount(st, balanceKey(t.asset, recipient), t.BalanceOf(recipient)+amount)
	}
	emitTokenTransferredEvent(t.host, t.asset, sender, recipient, amount)
	return true, nil
}

// Burn destroys amount from owner and shrinks the supply. There is deliberately no
// caller check, anyone may burn from any account that holds the amount.
func (t *Token) Burn(amount Amount, owner sdk.Address) (bool, error) {
	balance := t.BalanceOf(owner)
	if balance < amount {
		return false, fmt.Errorf("burn %d from %q (balance %d): %w", amount, owner, balance, ErrInsufficientBalance)
	}
	if amount > 0 {
		st := t.host.State
		setAmount(st, balanceKey(t.asset, owner), balance-amount)
		setAmount(st, supplyKey(t.asset), t.TotalSupply()-amount)
	}
	emitTokenBurnedEvent(t.host, t.asset, owner, amount)
	return true, nil
}

// BalanceOf returns the balance of addr, zero for unknown accounts.
func (t *Token) BalanceOf(addr sdk.Address) Amount {
	return getAmount(t.host.State, balanceKey(t.asset, addr))
}

func (t *Token) TotalSupply() Amount {
	return getAmount(t.host.State, supplyKey(t.asset))
}
