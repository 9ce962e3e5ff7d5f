package chain

import "math"

// CleanDustMode selects how aggressively near-empty accounts are removed
// once dust protection is active.
type CleanDustMode int

const (
	// CleanDustOff leaves dust accounts untouched.
	CleanDustOff CleanDustMode = iota
	// CleanDustBasic removes basic dust accounts only.
	CleanDustBasic
	// CleanDustWithCodeAndStorage also purges contract code and storage.
	CleanDustWithCodeAndStorage
)

const (
	blockhashGas       uint64 = 20
	eip210BlockhashGas uint64 = 350
	expByteGas         uint64 = 10
	eip160ExpByteGas   uint64 = 50
)

// Schedule is the set of execution-semantics flags and costs active at one
// block height. It is a plain value produced by Params.Schedule; instances
// carry no state and two calls with the same height yield equal values.
type Schedule struct {
	// MaxCodeSize bounds deployed contract code, in bytes.
	MaxCodeSize uint64
	// ExpByteGas is the per-byte cost of the exponent in EXP.
	ExpByteGas uint64
	// BlockhashGas is the cost of a block-hash lookup.
	BlockhashGas uint64

	// HaveDelegateCall enables delegate calls.
	HaveDelegateCall bool
	// HaveCreate2 enables contract creation at deterministic addresses.
	HaveCreate2 bool
	// HaveRevert enables value-reverting termination.
	HaveRevert bool
	// HaveStaticCall enables static (non-mutating) calls.
	HaveStaticCall bool
	// HaveReturnData enables return-data introspection.
	HaveReturnData bool

	// NoEmpty prevents creation of empty accounts.
	NoEmpty bool
	// KillEmpty deletes touched empty accounts at commit.
	KillEmpty bool
	// KillDust is the dust removal mode.
	KillDust CleanDustMode
}

// NewPostEIP150Schedule returns the baseline flag set of the post-EIP-150
// era. Height-gated features start disabled and are switched on by
// Params.UpdateSchedule.
func NewPostEIP150Schedule(maxCodeSize uint64, fixExp, noEmpty, killEmpty bool) Schedule {
	s := Schedule{
		MaxCodeSize:      maxCodeSize,
		ExpByteGas:       expByteGas,
		BlockhashGas:     blockhashGas,
		HaveDelegateCall: true,
		NoEmpty:          noEmpty,
		KillEmpty:        killEmpty,
	}
	if fixExp {
		s.ExpByteGas = eip160ExpByteGas
	}
	return s
}

// Schedule returns the execution flag set active at the given height. The
// result is a pure function of the parameters and the height.
func (p *Params) Schedule(number uint64) Schedule {
	s := NewPostEIP150Schedule(math.MaxUint64, true, true, true)
	p.UpdateSchedule(number, &s)
	return s
}

// UpdateSchedule applies the height-gated parameter transitions to an
// existing schedule. Every gate is a step function of the height alone.
func (p *Params) UpdateSchedule(number uint64, s *Schedule) {
	s.HaveCreate2 = number >= p.EIP86Transition
	s.HaveRevert = number >= p.EIP140Transition
	s.HaveStaticCall = number >= p.EIP214Transition
	s.HaveReturnData = number >= p.EIP211Transition
	if number >= p.EIP210Transition {
		s.BlockhashGas = eip210BlockhashGas
	}
	if number >= p.DustProtectionTransition {
		if p.RemoveDustContracts {
			s.KillDust = CleanDustWithCodeAndStorage
		} else {
			s.KillDust = CleanDustBasic
		}
	}
}
