package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"multiverse_net/contract"
	"multiverse_net/sdk"
)

// Scenario is one replayable list of contract calls. A file may hold several
// scenarios as separate YAML documents; each one starts from empty state.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single call. Sender defaults to the configured owner.
type Step struct {
	Action  string       `yaml:"action"`
	Sender  string       `yaml:"sender,omitempty"`
	Payload string       `yaml:"payload,omitempty"`
	Expect  *Expectation `yaml:"expect,omitempty"`
}

// Expectation is checked against the TxResult. Unset fields are not checked.
type Expectation struct {
	Success *bool  `yaml:"success,omitempty"`
	Ret     string `yaml:"ret,omitempty"`
	// Error must be a substring of the failure text.
	Error string `yaml:"error,omitempty"`
}

// Mismatch is a step whose result did not meet its expectation.
type Mismatch struct {
	Scenario string
	Step     int
	Action   string
	Reason   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s step %d (%s): %s", m.Scenario, m.Step, m.Action, m.Reason)
}

// parseScenarios decodes every YAML document in r.
func parseScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	var out []Scenario
	for {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing scenario %d: %w", len(out)+1, err)
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", len(out)+1)
		}
		for i, st := range sc.Steps {
			if strings.TrimSpace(st.Action) == "" {
				return nil, fmt.Errorf("%s step %d: missing action", sc.Name, i+1)
			}
		}
		out = append(out, sc)
	}
	return out, nil
}

func loadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()
	return parseScenarios(f)
}

// stepReport is one replayed step, printed by the run command.
type stepReport struct {
	Step   Step
	Result contract.TxResult
}

// replay resets sim and runs every step of sc in order.
func replay(sim *contract.Simulator, sc Scenario, owner sdk.Address, report func(stepReport)) ([]Mismatch, error) {
	if err := sim.Reset(); err != nil {
		return nil, err
	}
	var mismatches []Mismatch
	for i, st := range sc.Steps {
		sender := sdk.AddressFromString(st.Sender)
		if sender.IsZero() {
			sender = owner
		}
		res := sim.Call(st.Action, st.Payload, sender)
		if report != nil {
			report(stepReport{Step: st, Result: res})
		}
		if reason := checkExpectation(st.Expect, res); reason != "" {
			mismatches = append(mismatches, Mismatch{Scenario: sc.Name, Step: i + 1, Action: st.Action, Reason: reason})
		}
	}
	return mismatches, nil
}

func checkExpectation(exp *Expectation, res contract.TxResult) string {
	if exp == nil {
		return ""
	}
	if exp.Success != nil && *exp.Success != res.Success {
		return fmt.Sprintf("success = %t, want %t (%s)", res.Success, *exp.Success, res.Ret)
	}
	if exp.Ret != "" && exp.Ret != res.Ret {
		return fmt.Sprintf("ret = %q, want %q", res.Ret, exp.Ret)
	}
	if exp.Error != "" {
		if res.Success {
			return fmt.Sprintf("succeeded, want error containing %q", exp.Error)
		}
		if !strings.Contains(res.Ret, exp.Error) {
			return fmt.Sprintf("error = %q, want it to contain %q", res.Ret, exp.Error)
		}
	}
	return ""
}
