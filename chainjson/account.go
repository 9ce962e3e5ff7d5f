package chainjson

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// Account is one entry of the accounts section. An account may carry plain
// initial state (balance, nonce, code, storage), mark its bytecode as a
// constructor to run at genesis instead of storing it as-is, or describe a
// natively implemented builtin contract.
type Account struct {
	Balance     *math.HexOrDecimal256       `json:"balance,omitempty"`
	Nonce       *math.HexOrDecimal64        `json:"nonce,omitempty"`
	Code        hexutil.Bytes               `json:"code,omitempty"`
	Storage     map[StorageWord]StorageWord `json:"storage,omitempty"`
	Constructor hexutil.Bytes               `json:"constructor,omitempty"`
	Builtin     *Builtin                    `json:"builtin,omitempty"`
}

// Empty reports whether the account carries no initial state at all.
func (a *Account) Empty() bool {
	return a.Balance == nil && a.Nonce == nil && len(a.Code) == 0 &&
		len(a.Storage) == 0 && len(a.Constructor) == 0 && a.Builtin == nil
}

// Builtin describes a precompiled contract: its native implementation name,
// optional activation height and pricing model.
type Builtin struct {
	Name       string               `json:"name"`
	ActivateAt *math.HexOrDecimal64 `json:"activate_at,omitempty"`
	Pricing    Pricing              `json:"pricing"`
}

// Pricing selects the builtin cost model.
type Pricing struct {
	Linear *LinearPricing `json:"linear,omitempty"`
	Modexp *ModexpPricing `json:"modexp,omitempty"`
}

// LinearPricing charges a base cost plus a per-word cost of the input.
type LinearPricing struct {
	Base uint64 `json:"base"`
	Word uint64 `json:"word"`
}

// ModexpPricing divides the intrinsic modexp complexity by a divisor.
type ModexpPricing struct {
	Divisor uint64 `json:"divisor"`
}

// StorageWord is a 256-bit storage key or value. Unlike common.Hash it
// accepts shorter hex strings and pads them on the left.
type StorageWord common.Hash

// UnmarshalText decodes the word from hex, with or without the 0x prefix.
func (w *StorageWord) UnmarshalText(text []byte) error {
	*w = StorageWord{}
	text = bytes.TrimPrefix(text, []byte("0x"))
	if len(text) > 64 {
		return fmt.Errorf("too many hex characters in storage word %q", text)
	}
	if len(text)%2 == 1 {
		text = append([]byte("0"), text...)
	}
	offset := len(w) - len(text)/2 // pad on the left
	if _, err := hex.Decode(w[offset:], text); err != nil {
		return fmt.Errorf("invalid hex storage word %q", text)
	}
	return nil
}

// Hash returns the word as a common.Hash.
func (w StorageWord) Hash() common.Hash { return common.Hash(w) }

// Accounts is the accounts section. JSON objects carry a meaningful entry
// order here: genesis constructors run in declaration order, so the decoder
// preserves it instead of collecting the entries into a bare map.
type Accounts struct {
	accounts map[common.Address]Account
	order    []common.Address
}

// UnmarshalJSON decodes the accounts object preserving declaration order.
func (a *Accounts) UnmarshalJSON(data []byte) error {
	a.accounts = make(map[common.Address]Account)
	a.order = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("accounts section must be an object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var addr common.UnprefixedAddress
		if err := addr.UnmarshalText([]byte(key)); err != nil {
			return fmt.Errorf("invalid account address %q: %v", key, err)
		}
		var account Account
		if err := dec.Decode(&account); err != nil {
			return fmt.Errorf("invalid account %q: %v", key, err)
		}
		address := common.Address(addr)
		if _, dup := a.accounts[address]; !dup {
			a.order = append(a.order, address)
		}
		a.accounts[address] = account
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Len returns the number of accounts.
func (a *Accounts) Len() int { return len(a.order) }

// Addresses returns the account addresses in declaration order.
func (a *Accounts) Addresses() []common.Address {
	return append([]common.Address(nil), a.order...)
}

// Get returns the account at the address.
func (a *Accounts) Get(addr common.Address) (Account, bool) {
	account, ok := a.accounts[addr]
	return account, ok
}
