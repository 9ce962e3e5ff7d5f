package chain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func testParams() Params {
	return Params{
		AccountStartNonce:          0,
		MaximumExtraDataSize:       32,
		NetworkID:                  2,
		ChainID:                    2,
		SubprotocolName:            DefaultSubprotocolName,
		MinGasLimit:                5000,
		GasLimitBoundDivisor:       1024,
		BlockReward:                big.NewInt(5e9),
		EIP98Transition:            10,
		EIP155Transition:           10,
		ValidateReceiptsTransition: 10,
		EIP86Transition:            20,
		EIP140Transition:           20,
		EIP210Transition:           20,
		EIP210ContractAddress:      DefaultBlockhashContractAddress,
		EIP210ContractGas:          DefaultBlockhashContractGas,
		EIP211Transition:           30,
		EIP214Transition:           30,
		DustProtectionTransition:   40,
		NonceCapIncrement:          DefaultNonceCapIncrement,
	}
}

// TestContainsBugfixHardFork verifies that the check demands a non-zero
// height for every one of the nine on-by-default transitions.
func TestContainsBugfixHardFork(t *testing.T) {
	p := testParams()
	if !p.ContainsBugfixHardFork() {
		t.Fatal("all bugfix transitions are non-zero, want true")
	}

	zeroed := []struct {
		name string
		set  func(*Params)
	}{
		{"eip98", func(p *Params) { p.EIP98Transition = 0 }},
		{"eip155", func(p *Params) { p.EIP155Transition = 0 }},
		{"validateReceipts", func(p *Params) { p.ValidateReceiptsTransition = 0 }},
		{"eip86", func(p *Params) { p.EIP86Transition = 0 }},
		{"eip140", func(p *Params) { p.EIP140Transition = 0 }},
		{"eip210", func(p *Params) { p.EIP210Transition = 0 }},
		{"eip211", func(p *Params) { p.EIP211Transition = 0 }},
		{"eip214", func(p *Params) { p.EIP214Transition = 0 }},
		{"dustProtection", func(p *Params) { p.DustProtectionTransition = 0 }},
	}
	for _, tt := range zeroed {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.set(&p)
			if p.ContainsBugfixHardFork() {
				t.Errorf("%s transition is zero, want false", tt.name)
			}
		})
	}
}

// TestEvmChainConfig verifies the mapping of transition heights onto the EVM
// chain configuration.
func TestEvmChainConfig(t *testing.T) {
	p := testParams()
	cfg := p.EvmChainConfig()

	if cfg.ChainID.Uint64() != p.ChainID {
		t.Errorf("ChainID = %v, want %d", cfg.ChainID, p.ChainID)
	}
	if cfg.EIP155Block == nil || cfg.EIP155Block.Uint64() != p.EIP155Transition {
		t.Errorf("EIP155Block = %v, want %d", cfg.EIP155Block, p.EIP155Transition)
	}
	// The metropolis block is the latest of the member transitions.
	if cfg.ByzantiumBlock == nil || cfg.ByzantiumBlock.Uint64() != 30 {
		t.Errorf("ByzantiumBlock = %v, want 30", cfg.ByzantiumBlock)
	}
	if cfg.LondonBlock != nil || cfg.BerlinBlock != nil || cfg.IstanbulBlock != nil {
		t.Error("forks newer than the parameter model must stay disabled")
	}

	// An unscheduled member transition keeps metropolis disabled.
	p.EIP214Transition = NeverTransition
	if cfg := p.EvmChainConfig(); cfg.ByzantiumBlock != nil {
		t.Errorf("ByzantiumBlock = %v, want nil for an unscheduled transition", cfg.ByzantiumBlock)
	}
}

// TestParamsCopy verifies that Copy detaches every pointer field.
func TestParamsCopy(t *testing.T) {
	p := testParams()
	p.ForkBlock = &ForkPoint{Number: 7, Hash: common.HexToHash("0x01")}
	p.EIP210ContractCode = []byte{0x60, 0x00}

	cp := p.Copy()
	cp.BlockReward.SetUint64(1)
	cp.ForkBlock.Number = 8
	cp.EIP210ContractCode[0] = 0xff

	if p.BlockReward.Uint64() == 1 {
		t.Error("BlockReward is shared between copies")
	}
	if p.ForkBlock.Number == 8 {
		t.Error("ForkBlock is shared between copies")
	}
	if p.EIP210ContractCode[0] == 0xff {
		t.Error("EIP210ContractCode is shared between copies")
	}
}
