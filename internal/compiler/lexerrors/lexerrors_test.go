package lexerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	assert.Equal(t, "10:5", Position{Line: 10, Column: 5}.String())
	assert.Equal(t, "1:1", Position{Line: 1, Column: 1}.String())
}

func TestErrorError(t *testing.T) {
	err := New(PhaseStream, Position{Line: 10, Column: 5}, "unexpected token")
	assert.Equal(t, "[stream] 10:5: unexpected token", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(PhasePadding, Position{Line: 2, Column: 1}, "illegal padding state at byte %d", 42)
	assert.Equal(t, "[padding] 2:1: illegal padding state at byte 42", err.Error())
}

func TestMisuse(t *testing.T) {
	err := Misuse("cannot compare indexes from different lists")
	assert.Equal(t, PhaseTokenList, err.Phase)
	assert.Equal(t, "[tokenlist] 0:0: cannot compare indexes from different lists", err.Error())
}
