package contract

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"multiverse_net/sdk"
)

// payloadFields splits a pipe-delimited payload. Missing trailing fields read as "".
type payloadFields []string

func splitPayload(raw string) payloadFields {
	if raw == "" {
		return payloadFields{}
	}
	return payloadFields(strings.Split(raw, "|"))
}

func (p payloadFields) get(i int) string {
	if i < len(p) {
		return p[i]
	}
	return ""
}

// uintField parses field i as a base-10 uint64.
func (p payloadFields) uintField(i int, name string) (uint64, error) {
	v := strings.TrimSpace(p.get(i))
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, v, ErrInvalidPayload)
	}
	return n, nil
}

// intField parses field i as a base-10 int64.
func (p payloadFields) intField(i int, name string) (int64, error) {
	v := strings.TrimSpace(p.get(i))
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, v, ErrInvalidPayload)
	}
	return n, nil
}

// hexField decodes field i. An empty field is an empty buffer.
func (p payloadFields) hexField(i int, name string) ([]byte, error) {
	v := strings.TrimSpace(p.get(i))
	b, err := hex.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidPayload)
	}
	return b, nil
}

// addressField reads field i as an address, falling back to def when the field is blank.
func (p payloadFields) addressField(i int, def sdk.Address) sdk.Address {
	if v := sdk.AddressFromString(p.get(i)); !v.IsZero() {
		return v
	}
	return def
}

// requireFields rejects payloads with fewer than n fields.
func (p payloadFields) requireFields(n int, format string) error {
	if len(p) < n {
		return fmt.Errorf("expected %s: %w", format, ErrInvalidPayload)
	}
	return nil
}
