package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds an element from small integers for test brevity.
func mustNew(t *testing.T, number, prime int64) *Element {
	t.Helper()
	e, err := New(big.NewInt(number), big.NewInt(prime))
	require.NoError(t, err)
	return e
}

func TestNumberRange(t *testing.T) {
	_, err := New(big.NewInt(7), big.NewInt(3))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = New(big.NewInt(-1), big.NewInt(3))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = New(big.NewInt(2), big.NewInt(3))
	assert.NoError(t, err)
}

func TestEqual(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 2, 31)
	c := mustNew(t, 15, 31)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	// Same value in a different field is not equal.
	d := mustNew(t, 2, 37)
	assert.False(t, a.Equal(d))
}

func TestAdd(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 2, 37)
	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrPrimeMismatch)

	sum, err := mustNew(t, 2, 31).Add(mustNew(t, 15, 31))
	require.NoError(t, err)
	assert.True(t, sum.Equal(mustNew(t, 17, 31)))

	// Wraps around the modulus.
	sum, err = mustNew(t, 17, 31).Add(mustNew(t, 21, 31))
	require.NoError(t, err)
	assert.True(t, sum.Equal(mustNew(t, 7, 31)))
}

func TestSub(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 2, 37)
	_, err := a.Sub(b)
	assert.ErrorIs(t, err, ErrPrimeMismatch)

	diff, err := mustNew(t, 29, 31).Sub(mustNew(t, 4, 31))
	require.NoError(t, err)
	assert.True(t, diff.Equal(mustNew(t, 25, 31)))

	// Negative difference reduces into [0, p).
	diff, err = mustNew(t, 15, 31).Sub(mustNew(t, 30, 31))
	require.NoError(t, err)
	assert.True(t, diff.Equal(mustNew(t, 16, 31)))
}

func TestMul(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 2, 37)
	_, err := a.Mul(b)
	assert.ErrorIs(t, err, ErrPrimeMismatch)

	prod, err := mustNew(t, 24, 31).Mul(mustNew(t, 19, 31))
	require.NoError(t, err)
	assert.True(t, prod.Equal(mustNew(t, 22, 31)))
}

func TestPow(t *testing.T) {
	pow := mustNew(t, 17, 31).Pow(big.NewInt(3))
	assert.True(t, pow.Equal(mustNew(t, 15, 31)))

	pow = mustNew(t, 5, 31).Pow(big.NewInt(5))
	prod, err := pow.Mul(mustNew(t, 18, 31))
	require.NoError(t, err)
	assert.True(t, prod.Equal(mustNew(t, 16, 31)))
}

func TestPowNegativeExponent(t *testing.T) {
	pow := mustNew(t, 17, 31).Pow(big.NewInt(-3))
	assert.True(t, pow.Equal(mustNew(t, 29, 31)))

	// a * a^-1 == 1 for every nonzero a.
	for n := int64(1); n < 31; n++ {
		a := mustNew(t, n, 31)
		prod, err := a.Mul(a.Pow(big.NewInt(-1)))
		require.NoError(t, err)
		assert.True(t, prod.Equal(mustNew(t, 1, 31)), "n=%d", n)
	}
}

func TestDiv(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 2, 37)
	_, err := a.Div(b)
	assert.ErrorIs(t, err, ErrPrimeMismatch)

	quot, err := mustNew(t, 3, 31).Div(mustNew(t, 24, 31))
	require.NoError(t, err)
	assert.True(t, quot.Equal(mustNew(t, 4, 31)))
}

// Fermat's Little Theorem: a^(p-1) == 1 for every nonzero a.
func TestFermatsLittleTheorem(t *testing.T) {
	for n := int64(1); n < 31; n++ {
		pow := mustNew(t, n, 31).Pow(big.NewInt(30))
		assert.True(t, pow.Equal(mustNew(t, 1, 31)), "n=%d", n)
	}
}

func TestGroupLaws(t *testing.T) {
	a := mustNew(t, 11, 31)
	b := mustNew(t, 23, 31)
	c := mustNew(t, 30, 31)

	// Commutativity.
	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba))

	// Associativity.
	abc, err := ab.Add(c)
	require.NoError(t, err)
	bc, err := b.Add(c)
	require.NoError(t, err)
	abc2, err := a.Add(bc)
	require.NoError(t, err)
	assert.True(t, abc.Equal(abc2))
}

func TestImmutability(t *testing.T) {
	a := mustNew(t, 2, 31)
	b := mustNew(t, 15, 31)
	_, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, a.Equal(mustNew(t, 2, 31)))
	assert.True(t, b.Equal(mustNew(t, 15, 31)))

	// Accessors hand out copies, not the internal values.
	a.Number().SetInt64(99)
	a.Prime().SetInt64(99)
	assert.True(t, a.Equal(mustNew(t, 2, 31)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "FieldElement_31(2)", mustNew(t, 2, 31).String())
}
