package bitnum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddLength(t *testing.T) {
	// No carry.
	require.Equal(t, []bool{true, true}, add([]bool{true, false}, []bool{true}))

	// Carry grows by one bit.
	require.Equal(t, []bool{true, false, false}, add([]bool{true, true}, []bool{true}))

	// Both empty.
	require.Equal(t, []bool{}, add(nil, nil))
}

func TestMulShiftsCopy(t *testing.T) {
	b := []bool{true, true}
	p := mul([]bool{true, false, true}, b)

	require.Equal(t, []bool{true, true, true, true}, p)
	require.Equal(t, []bool{true, true}, b)
}

func TestSub(t *testing.T) {
	diff, borrow := sub([]bool{true, false, true, false}, []bool{true, true})
	require.False(t, borrow)
	require.Equal(t, "7", Number{bits: diff}.Decimal())

	_, borrow = sub([]bool{true, true}, []bool{true, false, false})
	require.True(t, borrow)

	diff, borrow = sub([]bool{true, true}, []bool{true, true})
	require.False(t, borrow)
	require.Empty(t, trim(diff))
}

func TestDivmod(t *testing.T) {
	for i := uint64(0); i < 300; i += 7 {
		for _, d := range []uint64{1, 2, 3, 10, 16} {
			t.Run(fmt.Sprintf("%d/%d", i, d), func(t *testing.T) {
				q, r := divmod(FromUint64(i).value(), FromUint64(d).value())

				bq, br := new(big.Int).QuoRem(
					new(big.Int).SetUint64(i),
					new(big.Int).SetUint64(d),
					new(big.Int),
				)

				require.Equal(t, bq.Text(2), Number{bits: q}.BitString())
				require.Equal(t, br.Text(2), Number{bits: r}.BitString())
			})
		}
	}
}
