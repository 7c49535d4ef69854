package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndTimesStayExact(t *testing.T) {
	// 0.1 added ten times drifts in binary floating point.
	total := Zero
	for i := 0; i < 10; i++ {
		total = total.Add(MustParse("0.1"))
	}
	assert.True(t, total.Equal(MustParse("1")))

	assert.Equal(t, "26.00", MustParse("10").Times(2).Add(MustParse("3.00").Times(2)).String())
	assert.Equal(t, "0.00", MustParse("19.90").Times(0).String())
}

func TestFormat(t *testing.T) {
	cases := map[string]string{
		"10":        "R$ 10,00",
		"26":        "R$ 26,00",
		"0.5":       "R$ 0,50",
		"1234.5":    "R$ 1.234,50",
		"1234567.1": "R$ 1.234.567,10",
		"-42.3":     "-R$ 42,30",
		"19.999":    "R$ 20,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustParse(in).Format(), in)
	}
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, "12.34", FromCents(1234).String())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("ten reais")
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: MustParse("26")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":26.00}`, string(b))

	var in struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":10.5,"b":"3.25"}`), &in))
	assert.Equal(t, "10.50", in.A.String())
	assert.Equal(t, "3.25", in.B.String())
}

func TestScanAndValue(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("7.90"))
	assert.Equal(t, "7.90", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "7.9", v)
}
