package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	regs := NewRegisters()
	assert.Equal(t, SoftHyphen, regs.S(P_SEPARATOR))
	assert.Equal(t, "en_US", regs.S(P_LANGUAGE))
	assert.Equal(t, 0, regs.N(P_MINHYPHENLENGTH))
	assert.Equal(t, WhitespacePreserve, regs.N(P_WHITESPACE))
	assert.False(t, regs.B(P_NORMALIZE))
}

func TestGrouping(t *testing.T) {
	regs := NewRegisters()
	regs.Push(P_LANGUAGE, "de_CH")
	regs.Begingroup()
	regs.Push(P_LANGUAGE, "fr_CH")
	regs.Push(P_SEPARATOR, "-")
	assert.Equal(t, "fr_CH", regs.S(P_LANGUAGE))
	regs.Begingroup()
	assert.Equal(t, "fr_CH", regs.S(P_LANGUAGE), "inner group should see outer group value")
	regs.Push(P_LANGUAGE, "it_CH")
	assert.Equal(t, "it_CH", regs.S(P_LANGUAGE))
	regs.Endgroup()
	assert.Equal(t, "fr_CH", regs.S(P_LANGUAGE))
	regs.Endgroup()
	assert.Equal(t, "de_CH", regs.S(P_LANGUAGE))
	assert.Equal(t, SoftHyphen, regs.S(P_SEPARATOR))
}

func TestEndgroupWithoutPush(t *testing.T) {
	regs := NewRegisters()
	regs.Begingroup()
	regs.Endgroup()
	regs.Endgroup() // unbalanced, must be harmless
	regs.Push(P_MINHYPHENLENGTH, 5)
	assert.Equal(t, 5, regs.N(P_MINHYPHENLENGTH))
	regs.Begingroup()
	regs.Endgroup()
	assert.Equal(t, 5, regs.N(P_MINHYPHENLENGTH), "base value must survive an empty group")
}

func TestIllegalKeyPanics(t *testing.T) {
	regs := NewRegisters()
	assert.Panics(t, func() { regs.Get(P_STOPPER) })
	assert.Panics(t, func() { regs.Push(none, 1) })
}
