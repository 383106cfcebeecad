package contract

import (
	"fmt"

	"multiverse_net/sdk"
)

// ComputationRegistry tracks quantum computation jobs submitted by the owner
// and the results the owner later reports back.
type ComputationRegistry struct {
	base
}

func NewComputationRegistry(host *sdk.Host, owner sdk.Address) (*ComputationRegistry, error) {
	b, err := initContract(host, nsComputation, "computation", owner)
	if err != nil {
		return nil, err
	}
	return &ComputationRegistry{base: b}, nil
}

// InitiateComputation registers a pending job with an empty output buffer.
func (c *ComputationRegistry) InitiateComputation(computationType string, inputData []byte, sender sdk.Address) (uint64, error) {
	if !c.isContractOwner(sender) {
		return 0, fmt.Errorf("initiate computation as %q: %w", sender, ErrUnauthorized)
	}
	id := nextID(c.host.State, counterKey(kComputation))
	comp := &Computation{
		ID:              id,
		ComputationType: computationType,
		InputData:       cloneBytes(inputData),
		OutputData:      []byte{},
		Status:          ComputationPending,
	}
	c.save(comp)
	recordsCreated.WithLabelValues("computation").Inc()
	emitComputationInitiatedEvent(c.host, id, computationType)
	return id, nil
}

// UpdateComputationResult stores the output and marks the job completed.
// Completed jobs may be updated again, the last result wins.
func (c *ComputationRegistry) UpdateComputationResult(id uint64, outputData []byte, sender sdk.Address) (bool, error) {
	if !c.isContractOwner(sender) {
		return false, fmt.Errorf("update computation %d as %q: %w", id, sender, ErrUnauthorized)
	}
	comp, err := c.GetComputation(id)
	if err != nil {
		return false, err
	}
	comp.OutputData = cloneBytes(outputData)
	comp.Status = ComputationCompleted
	c.save(comp)
	emitComputationCompletedEvent(c.host, id, len(outputData))
	return true, nil
}

// GetComputation loads job id or fails with ErrInvalidComputation.
func (c *ComputationRegistry) GetComputation(id uint64) (*Computation, error) {
	ptr := c.host.State.Get(computationKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("computation %d: %w", id, ErrInvalidComputation)
	}
	comp, err := DecodeComputation([]byte(*ptr))
	if err != nil {
		return nil, fmt.Errorf("decode computation %d: %w", id, err)
	}
	return comp, nil
}

// ComputationCount is the number of jobs ever registered.
func (c *ComputationRegistry) ComputationCount() uint64 {
	return getCount(c.host.State, counterKey(kComputation))
}

func (c *ComputationRegistry) save(comp *Computation) {
	c.host.State.Set(computationKey(comp.ID), string(EncodeComputation(comp)))
}
