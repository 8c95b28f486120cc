package bitnum_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitnum/bitnum"
)

func TestFromDecimal(t *testing.T) {
	type TC struct {
		text string
		bits string
		Mark error
	}

	tcs := []TC{
		{text: "0", bits: "0"},
		{text: "00", bits: "0"},
		{text: "1", bits: "1"},
		{text: "2", bits: "10"},
		{text: "10", bits: "1010"},
		{text: "64", bits: "1000000"},
		{text: "128", bits: "10000000"},
		{text: "007", bits: "111"},
		{text: "9223372036854775808", bits: "1" + fmt.Sprintf("%063d", 0)},
		{text: "", Mark: oops.New("unexpected")},
		{text: "a", Mark: oops.New("unexpected")},
		{text: "abc", Mark: oops.New("unexpected")},
		{text: "12 3", Mark: oops.New("unexpected")},
		{text: "-1", Mark: oops.New("unexpected")},
		{text: "1.5", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.text), func(t *testing.T) {
			n, err := bitnum.FromDecimal(tc.text)
			if tc.Mark != nil {
				require.Error(t, err)
				require.True(t, bitnum.InvalidInput.Has(err), "%+v", err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.bits, n.BitString())
		})
	}
}

func TestDecimalRoundtrip(t *testing.T) {
	texts := append([]string{
		"99",
		"100",
		"101",
		"4095",
		"524287",
		"1000000000000000000000",
		"26187124863169134960105517574620793217733136368344518315866330944769070371237396439066160738607233257207093473020480568073738052367083144426628220715007",
	}, samples...)

	for i, text := range texts {
		t.Run(fmt.Sprintf("[%d]%s", i, text), func(t *testing.T) {
			n := decimal(t, text)
			require.Equal(t, text, n.Decimal())
			require.Equal(t, text, n.String())
			require.Equal(t, oracle(t, text).Text(2), n.BitString())
		})
	}
}

func TestMustDecimal(t *testing.T) {
	require.Equal(t, "42", bitnum.MustDecimal("42").String())
	require.Panics(t, func() {
		bitnum.MustDecimal("forty two")
	})
}

func TestText(t *testing.T) {
	type Doc struct {
		Value bitnum.Number `json:"value"`
	}

	data, err := json.Marshal(Doc{Value: decimal(t, "18446744073709551616")})
	require.NoError(t, err)
	require.Equal(t, `{"value":"18446744073709551616"}`, string(data))

	var doc Doc
	err = json.Unmarshal(data, &doc)
	require.NoError(t, err)
	require.True(t, decimal(t, "18446744073709551616").Equal(doc.Value))

	err = json.Unmarshal([]byte(`{"value":"0x10"}`), &doc)
	require.Error(t, err)
	require.True(t, bitnum.InvalidInput.Has(err))
}
