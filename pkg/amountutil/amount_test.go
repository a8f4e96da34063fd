package amountutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/change-service/internal/domain"
	"github.com/tirasundara/change-service/pkg/amountutil"
)

func TestAmountParser_ParseAmount(t *testing.T) {
	parser := amountutil.NewAmountParser(0)

	cases := []struct {
		input string
		want  int64
	}{
		{"2.12", 212},
		{"3.00", 300},
		{"0", 0},
		{"0.00", 0},
		{"10", 1000},
		{"0.5", 50},
		{" 1.25 ", 125},
		{"100000", 10_000_000},
	}

	for _, tc := range cases {
		got, err := parser.ParseAmount(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestAmountParser_ParseAmount_Rejections(t *testing.T) {
	parser := amountutil.NewAmountParser(0)

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"trailing decimal point", "2."},
		{"three decimal places", "2.123"},
		{"negative", "-1.00"},
		{"not a number", "abc"},
		{"mixed garbage", "1.2x"},
		{"exceeds maximum", "100000.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseAmount(tc.input)
			require.Error(t, err)

			var amountErr domain.InvalidAmountError
			require.ErrorAs(t, err, &amountErr)
			assert.Equal(t, tc.input, amountErr.Input)
		})
	}
}

func TestAmountParser_CustomMaximum(t *testing.T) {
	parser := amountutil.NewAmountParser(500)

	got, err := parser.ParseAmount("5.00")
	require.NoError(t, err)
	assert.Equal(t, int64(500), got)

	_, err = parser.ParseAmount("5.01")
	var amountErr domain.InvalidAmountError
	require.ErrorAs(t, err, &amountErr)
}

func TestAmountParser_ParseTransactionLine(t *testing.T) {
	parser := amountutil.NewAmountParser(0)

	t.Run("decimal point layout", func(t *testing.T) {
		owed, paid, err := parser.ParseTransactionLine("2.12,3.00")
		require.NoError(t, err)
		assert.Equal(t, int64(212), owed)
		assert.Equal(t, int64(300), paid)
	})

	t.Run("decimal comma layout", func(t *testing.T) {
		owed, paid, err := parser.ParseTransactionLine("2,12,3,00")
		require.NoError(t, err)
		assert.Equal(t, int64(212), owed)
		assert.Equal(t, int64(300), paid)
	})

	t.Run("whole amounts", func(t *testing.T) {
		owed, paid, err := parser.ParseTransactionLine("1,3")
		require.NoError(t, err)
		assert.Equal(t, int64(100), owed)
		assert.Equal(t, int64(300), paid)
	})

	t.Run("wrong field count", func(t *testing.T) {
		for _, line := range []string{"2.12", "1,2,3", "1,2,3,4,5"} {
			_, _, err := parser.ParseTransactionLine(line)

			var lineErr domain.InvalidLineError
			require.ErrorAs(t, err, &lineErr, "line %q", line)
		}
	})

	t.Run("bad amount inside a valid layout", func(t *testing.T) {
		_, _, err := parser.ParseTransactionLine("2.123,3.00")

		var amountErr domain.InvalidAmountError
		require.ErrorAs(t, err, &amountErr)
	})
}
