package contract

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"multiverse_net/sdk"
)

// DefaultOwner is the identity the simulators trust when nothing else is configured.
const DefaultOwner sdk.Address = "CONTRACT_OWNER"

// TxResult is what a dispatched call reports back: Ret carries the id, "true",
// the JSON view, or the error text on failure.
type TxResult struct {
	Success bool
	Ret     string
	Err     error
}

// SimulatorOptions configures the identities and asset a Simulator boots with.
type SimulatorOptions struct {
	// Owner may mint messages, register computations and manage channels.
	Owner sdk.Address
	// Minter may mint tokens. Defaults to Owner.
	Minter sdk.Address
	Asset  sdk.Asset
	Logger *zap.Logger
}

// Simulator hosts all four contracts on one Host and dispatches named actions
// with pipe-delimited payloads to them, the way a chain would route a tx.
type Simulator struct {
	host   *sdk.Host
	opts   SimulatorOptions
	logger *zap.Logger

	Messages     *MessageNFT
	Token        *Token
	Computations *ComputationRegistry
	Channels     *ChannelRegistry
}

// NewSimulator deploys the contracts onto host.
func NewSimulator(host *sdk.Host, opts SimulatorOptions) (*Simulator, error) {
	if host == nil {
		host = sdk.NewMockHost()
	}
	if opts.Owner.IsZero() {
		opts.Owner = DefaultOwner
	}
	if opts.Minter.IsZero() {
		opts.Minter = opts.Owner
	}
	if opts.Asset == "" {
		opts.Asset = sdk.AssetNIT
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulator{host: host, opts: opts, logger: logger}
	if err := s.deploy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulator) deploy() error {
	var err error
	if s.Messages, err = NewMessageNFT(s.host, s.opts.Owner); err != nil {
		return err
	}
	if s.Token, err = NewToken(s.host, s.opts.Minter, s.opts.Asset); err != nil {
		return err
	}
	if s.Computations, err = NewComputationRegistry(s.host, s.opts.Owner); err != nil {
		return err
	}
	if s.Channels, err = NewChannelRegistry(s.host, s.opts.Owner); err != nil {
		return err
	}
	return nil
}

// Host exposes the underlying host, mostly for tests peeking at state and events.
func (s *Simulator) Host() *sdk.Host {
	return s.host
}

// Reset wipes all state and redeploys the contracts, ids start at 1 again.
func (s *Simulator) Reset() error {
	if mem, ok := s.host.State.(*sdk.MemoryState); ok {
		mem.Clear()
	} else {
		s.host.State = sdk.NewMemoryState()
	}
	s.logger.Debug("simulator reset")
	return s.deploy()
}

// Call dispatches action with payload as sender. It never panics on bad input;
// every failure comes back as an unsuccessful TxResult with state untouched.
func (s *Simulator) Call(action, payload string, sender sdk.Address) TxResult {
	h, ok := handlers[action]
	if !ok {
		err := fmt.Errorf("%q: %w", action, ErrUnknownAction)
		contractCalls.WithLabelValues("unknown", outcomeOf(err)).Inc()
		return TxResult{Ret: err.Error(), Err: err}
	}
	ret, err := h(s, splitPayload(payload), sender)
	contractCalls.WithLabelValues(action, outcomeOf(err)).Inc()
	if err != nil {
		s.logger.Debug("contract call failed",
			zap.String("action", action),
			zap.String("sender", sender.String()),
			zap.Error(err),
		)
		return TxResult{Ret: err.Error(), Err: err}
	}
	s.logger.Debug("contract call",
		zap.String("action", action),
		zap.String("sender", sender.String()),
		zap.String("ret", ret),
	)
	return TxResult{Success: true, Ret: ret}
}

// Actions lists every dispatchable action name, sorted.
func Actions() []string {
	out := make([]string, 0, len(handlers))
	for name := range handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// PayloadFormat documents the payload an action expects, "" for unknown actions.
func PayloadFormat(action string) string {
	return payloadFormats[action]
}

// outcomeOf buckets an error into a low-cardinality metrics label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, ErrUnknownAction):
		return "unknown_action"
	default:
		return "error"
	}
}

// Records is a decoded copy of everything the simulator holds.
type Records struct {
	Messages     []MessageView
	Computations []*Computation
	Channels     []*Channel
	Asset        sdk.Asset
	TotalSupply  Amount
}

// Records decodes every stored record in id order.
func (s *Simulator) Records() (*Records, error) {
	out := &Records{Asset: s.Token.Asset(), TotalSupply: s.Token.TotalSupply()}
	for id := uint64(1); id <= s.Messages.LastMessageID(); id++ {
		msg, err := s.Messages.GetMessage(id)
		if err != nil {
			return nil, err
		}
		out.Messages = append(out.Messages, MessageView{Message: msg, Owner: s.Messages.OwnerOf(id)})
	}
	for id := uint64(1); id <= s.Computations.ComputationCount(); id++ {
		comp, err := s.Computations.GetComputation(id)
		if err != nil {
			return nil, err
		}
		out.Computations = append(out.Computations, comp)
	}
	for id := uint64(1); id <= s.Channels.ChannelCount(); id++ {
		ch, err := s.Channels.GetChannel(id)
		if err != nil {
			return nil, err
		}
		out.Channels = append(out.Channels, ch)
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Action handlers
// -----------------------------------------------------------------------------

type handlerFunc func(s *Simulator, p payloadFields, sender sdk.Address) (string, error)

var payloadFormats = map[string]string{
	"message_mint":       "senderUniverse|recipientUniverse|contentHashHex|channelId",
	"message_transfer":   "messageId|recipient",
	"message_get":        "messageId",
	"token_mint":         "amount|recipient",
	"token_transfer":     "amount|recipient",
	"token_burn":         "amount[|owner]",
	"token_balance":      "[account]",
	"token_supply":       "",
	"computation_init":   "computationType|inputHex",
	"computation_result": "computationId|outputHex",
	"computation_get":    "computationId",
	"channel_create":     "universeA|universeB|entanglementStrength",
	"channel_status":     "channelId|status",
	"channel_strengthen": "channelId|increase",
	"channel_get":        "channelId",
}

var handlers = map[string]handlerFunc{
	"message_mint":       handleMessageMint,
	"message_transfer":   handleMessageTransfer,
	"message_get":        handleMessageGet,
	"token_mint":         handleTokenMint,
	"token_transfer":     handleTokenTransfer,
	"token_burn":         handleTokenBurn,
	"token_balance":      handleTokenBalance,
	"token_supply":       handleTokenSupply,
	"computation_init":   handleComputationInit,
	"computation_result": handleComputationResult,
	"computation_get":    handleComputationGet,
	"channel_create":     handleChannelCreate,
	"channel_status":     handleChannelStatus,
	"channel_strengthen": handleChannelStrengthen,
	"channel_get":        handleChannelGet,
}

func formatID(id uint64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}

func formatOK(ok bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(ok), nil
}

func handleMessageMint(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(4, payloadFormats["message_mint"]); err != nil {
		return "", err
	}
	hash, err := p.hexField(2, "content hash")
	if err != nil {
		return "", err
	}
	channelID, err := p.uintField(3, "channel id")
	if err != nil {
		return "", err
	}
	return formatID(s.Messages.MintMessage(p.get(0), p.get(1), hash, channelID, sender))
}

func handleMessageTransfer(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(2, payloadFormats["message_transfer"]); err != nil {
		return "", err
	}
	id, err := p.uintField(0, "message id")
	if err != nil {
		return "", err
	}
	return formatOK(s.Messages.TransferMessage(id, sender, p.addressField(1, "")))
}

func handleMessageGet(s *Simulator, p payloadFields, _ sdk.Address) (string, error) {
	id, err := p.uintField(0, "message id")
	if err != nil {
		return "", err
	}
	msg, err := s.Messages.GetMessage(id)
	if err != nil {
		return "", err
	}
	return toJSON(MessageView{Message: msg, Owner: s.Messages.OwnerOf(id)})
}

func handleTokenMint(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(2, payloadFormats["token_mint"]); err != nil {
		return "", err
	}
	amount, err := p.uintField(0, "amount")
	if err != nil {
		return "", err
	}
	return formatOK(s.Token.Mint(Amount(amount), p.addressField(1, ""), sender))
}

func handleTokenTransfer(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(2, payloadFormats["token_transfer"]); err != nil {
		return "", err
	}
	amount, err := p.uintField(0, "amount")
	if err != nil {
		return "", err
	}
	return formatOK(s.Token.Transfer(Amount(amount), sender, p.addressField(1, "")))
}

// handleTokenBurn burns from the named owner, or from the sender when none is given.
func handleTokenBurn(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	amount, err := p.uintField(0, "amount")
	if err != nil {
		return "", err
	}
	return formatOK(s.Token.Burn(Amount(amount), p.addressField(1, sender)))
}

func handleTokenBalance(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	account := p.addressField(0, sender)
	return toJSON(BalanceView{Asset: s.Token.Asset(), Account: account, Amount: s.Token.BalanceOf(account)})
}

func handleTokenSupply(s *Simulator, _ payloadFields, _ sdk.Address) (string, error) {
	return toJSON(BalanceView{Asset: s.Token.Asset(), Amount: s.Token.TotalSupply()})
}

func handleComputationInit(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(1, payloadFormats["computation_init"]); err != nil {
		return "", err
	}
	input, err := p.hexField(1, "input data")
	if err != nil {
		return "", err
	}
	return formatID(s.Computations.InitiateComputation(p.get(0), input, sender))
}

func handleComputationResult(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	id, err := p.uintField(0, "computation id")
	if err != nil {
		return "", err
	}
	output, err := p.hexField(1, "output data")
	if err != nil {
		return "", err
	}
	return formatOK(s.Computations.UpdateComputationResult(id, output, sender))
}

func handleComputationGet(s *Simulator, p payloadFields, _ sdk.Address) (string, error) {
	id, err := p.uintField(0, "computation id")
	if err != nil {
		return "", err
	}
	comp, err := s.Computations.GetComputation(id)
	if err != nil {
		return "", err
	}
	return toJSON(comp)
}

func handleChannelCreate(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(3, payloadFormats["channel_create"]); err != nil {
		return "", err
	}
	strength, err := p.intField(2, "entanglement strength")
	if err != nil {
		return "", err
	}
	return formatID(s.Channels.CreateChannel(p.get(0), p.get(1), strength, sender))
}

func handleChannelStatus(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(2, payloadFormats["channel_status"]); err != nil {
		return "", err
	}
	id, err := p.uintField(0, "channel id")
	if err != nil {
		return "", err
	}
	status := ChannelStatus(strings.TrimSpace(p.get(1)))
	return formatOK(s.Channels.UpdateChannelStatus(id, status, sender))
}

func handleChannelStrengthen(s *Simulator, p payloadFields, sender sdk.Address) (string, error) {
	if err := p.requireFields(2, payloadFormats["channel_strengthen"]); err != nil {
		return "", err
	}
	id, err := p.uintField(0, "channel id")
	if err != nil {
		return "", err
	}
	increase, err := p.intField(1, "increase")
	if err != nil {
		return "", err
	}
	return formatOK(s.Channels.StrengthenEntanglement(id, increase, sender))
}

func handleChannelGet(s *Simulator, p payloadFields, _ sdk.Address) (string, error) {
	id, err := p.uintField(0, "channel id")
	if err != nil {
		return "", err
	}
	ch, err := s.Channels.GetChannel(id)
	if err != nil {
		return "", err
	}
	return toJSON(ch)
}
