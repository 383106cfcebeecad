package contract

import (
	"strconv"

	"multiverse_net/sdk"
)

// getCount reads the decimal counter under key and defaults to zero.
func getCount(st sdk.State, key string) uint64 {
	ptr := st.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings.
func setCount(st sdk.State, key string, n uint64) {
	st.Set(key, strconv.FormatUint(n, 10))
}

// nextID bumps the counter and returns the new value, so the first id is 1.
// It writes, so callers run every guard before calling it.
func nextID(st sdk.State, key string) uint64 {
	id := getCount(st, key) + 1
	setCount(st, key, id)
	return id
}

// getAmount reads a decimal amount, missing keys count as zero.
func getAmount(st sdk.State, key string) Amount {
	ptr := st.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return Amount(n)
}

// setAmount writes the amount, or drops the key when it reaches zero so empty accounts leave no trace.
func setAmount(st sdk.State, key string, v Amount) {
	if v == 0 {
		st.Delete(key)
		return
	}
	st.Set(key, strconv.FormatUint(uint64(v), 10))
}
