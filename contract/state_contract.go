package contract

import (
	"fmt"
	"strings"

	"multiverse_net/sdk"
)

// Contract namespaces, one per contract kind sharing a host.
const (
	nsMessageNFT  byte = 'm'
	nsToken       byte = 't'
	nsComputation byte = 'q'
	nsChannel     byte = 'c'
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// base carries what every contract needs: the host and its config namespace.
type base struct {
	host *sdk.Host
	ns   byte
}

// initContract stores the config once. Re-initializing with the same owner is a no-op,
// a different owner is rejected so nobody can take over an existing contract.
func initContract(host *sdk.Host, ns byte, kind string, owner sdk.Address) (base, error) {
	if owner.IsZero() {
		return base{}, fmt.Errorf("%s owner: %w", kind, ErrEmptyAddress)
	}
	b := base{host: host, ns: ns}
	if cfg := b.loadContractConfig(); cfg != nil {
		if cfg.Owner != owner {
			return base{}, fmt.Errorf("%s owned by %s: %w", kind, cfg.Owner, ErrAlreadyInitialized)
		}
		return b, nil
	}
	b.saveContractConfig(&ContractConfig{Kind: kind, Owner: owner})
	return b, nil
}

// loadContractConfig loads the contract configuration from state.
func (b base) loadContractConfig() *ContractConfig {
	ptr := b.host.StateGetObject(configKey(b.ns))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func (b base) saveContractConfig(cfg *ContractConfig) {
	b.host.StateSetObject(configKey(b.ns), encodeContractConfig(cfg))
}

// Owner returns the privileged identity, or "" if the config is gone.
func (b base) Owner() sdk.Address {
	cfg := b.loadContractConfig()
	if cfg == nil {
		return ""
	}
	return cfg.Owner
}

// isContractOwner returns true if the given address is the contract owner.
func (b base) isContractOwner(addr sdk.Address) bool {
	owner := b.Owner()
	return !owner.IsZero() && owner == addr
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: kind|owner
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Kind + "|" + cfg.Owner.String()
}

// decodeContractConfig splits on the first pipe only, owners may contain anything.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.SplitN(data, "|", 2)
	if len(parts) < 2 {
		return nil
	}
	return &ContractConfig{
		Kind:  parts[0],
		Owner: sdk.Address(parts[1]),
	}
}
