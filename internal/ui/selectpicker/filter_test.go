package selectpicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestFilterItems_EmptyKeywordReturnsAll(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())

	filtered := cfg.filterItems("")

	require.Len(t, filtered, len(cfg.Items))
}

func TestFilterItems_CaseInsensitiveSubstring(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())

	for _, keyword := range []string{"AN", "an", "An"} {
		filtered := cfg.filterItems(keyword)
		require.Len(t, filtered, 2, "keyword %q", keyword)
		require.Equal(t, "banana", filtered[0].Value)
		require.Equal(t, "durian", filtered[1].Value)
	}
}

func TestFilterItems_PreservesSourceOrder(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())

	filtered := cfg.filterItems("e")

	var values []string
	for _, o := range filtered {
		values = append(values, o.Value)
	}
	require.Equal(t, []string{"apple", "cherry", "elderberry"}, values)
}

func TestFilterItems_NoMatches(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())

	require.Empty(t, cfg.filterItems("zzz"))
}

func TestFilterItems_CustomSearchBy(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())
	// Match on value prefix instead of the label.
	cfg.SearchBy = func(keyword, _ string, item Option) bool {
		return strings.HasPrefix(item.Value, keyword)
	}

	filtered := cfg.filterItems("d")

	require.Len(t, filtered, 1)
	require.Equal(t, "durian", filtered[0].Value)
}

func TestFilterItems_DisabledOptionsStillListed(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())

	filtered := cfg.filterItems("cherry")

	require.Len(t, filtered, 1)
	require.True(t, filtered[0].Disabled)
}

func TestSearch_KeywordChangeFocusesFirstMatch(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())
	cfg.Searchable = true
	m := New(cfg).Focus()
	m, _ = m.Open()

	m, cmd := m.Update(runeKey('d'))

	require.Equal(t, "d", m.SearchKeyword())
	require.Equal(t, "durian", m.FocusedValue())

	msgs := drainCmd(cmd)
	var search SearchMsg
	for _, msg := range msgs {
		if s, ok := msg.(SearchMsg); ok {
			search = s
		}
	}
	require.Equal(t, "d", search.Keyword)
}

func TestSearch_NoMatchesClearsFocus(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())
	cfg.Searchable = true
	m := New(cfg).Focus()
	m, _ = m.Open()

	for _, r := range "zzz" {
		m, _ = m.Update(runeKey(r))
	}

	require.Empty(t, m.FilteredItems())
	require.Empty(t, m.FocusedValue())
}

func TestSearch_CallbackReplacesFallback(t *testing.T) {
	type searched struct{ keyword string }

	cfg := SimpleConfig(fruitOptions())
	cfg.Searchable = true
	cfg.OnSearch = func(keyword string) tea.Msg { return searched{keyword} }
	m := New(cfg).Focus()
	m, _ = m.Open()

	_, cmd := m.Update(runeKey('a'))

	msgs := drainCmd(cmd)
	require.Contains(t, msgs, tea.Msg(searched{"a"}))
}

func TestSearch_BackspaceRefiltersWidening(t *testing.T) {
	cfg := SimpleConfig(fruitOptions())
	cfg.Searchable = true
	m := New(cfg).Focus()
	m, _ = m.Open()

	m, _ = m.Update(runeKey('a'))
	m, _ = m.Update(runeKey('n'))
	narrow := len(m.FilteredItems())

	m, _ = m.Update(keyPress(tea.KeyBackspace))

	require.Equal(t, "a", m.SearchKeyword())
	require.Greater(t, len(m.FilteredItems()), narrow)
}
