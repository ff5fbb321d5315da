package verinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringTableLanguageCodePage(t *testing.T) {
	table := NewStringTable("040904B0")

	lang, err := table.Language()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0409), lang)

	cp, err := table.CodePage()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x04B0), cp)
}

func TestStringTableBadKey(t *testing.T) {
	for _, key := range []string{"", "04", "zzzz04B0", "0409zzzz"} {
		table := NewStringTable(key)
		if len(key) >= 4 && key[:4] == "0409" {
			_, err := table.CodePage()
			assert.ErrorIs(t, err, ErrFormat, "key %q", key)
			continue
		}
		_, err := table.Language()
		assert.ErrorIs(t, err, ErrFormat, "key %q", key)
	}
}

func TestStringTableOverwriteKeepsPosition(t *testing.T) {
	table := NewStringTable("040904B0")
	table.Set("CompanyName", "Example")
	table.Set("ProductName", "Widget")
	table.Set("CompanyName", "Example Corp")

	assert.Equal(t, []string{"CompanyName", "ProductName"}, table.Names())
	got, ok := table.Get("CompanyName")
	require.True(t, ok)
	assert.Equal(t, "Example Corp", got)
	assert.Equal(t, 2, table.Len())
}

func TestStringFileInfoTableLookup(t *testing.T) {
	s := NewStringFileInfo()
	s.Add(NewStringTable("040904B0"))
	s.Add(NewStringTable("040704E4"))

	table, ok := s.Table("040704E4")
	require.True(t, ok)
	assert.Equal(t, "040704E4", table.Key())

	_, ok = s.Table("000004E4")
	assert.False(t, ok)

	require.Len(t, s.Tables(), 2)
}

func TestVarFileInfoTranslations(t *testing.T) {
	v := NewVarFileInfo()
	assert.Nil(t, v.Translations())

	v.AddTranslation(0x0409, 0x04B0)
	v.AddTranslation(0x0407, 0x04E4)
	assert.Equal(t, []Pair{
		{Language: 0x0409, CodePage: 0x04B0},
		{Language: 0x0407, CodePage: 0x04E4},
	}, v.Translations(), "pairs keep declaration order")

	tr, ok := v.Var(TranslationKey)
	require.True(t, ok)
	assert.Len(t, tr.Pairs(), 2)
}
