package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pages   []Page
		wantErr error
	}{
		{name: "default set", pages: DefaultPages},
		{name: "all known pages", pages: KnownPages},
		{name: "variant without security", pages: []Page{PageHome, PageFeatures, PagePricing, PageAbout}},
		{name: "empty", pages: nil, wantErr: ErrNoPages},
		{name: "missing home", pages: []Page{PageFeatures, PagePricing}, wantErr: ErrNoLanding},
		{name: "unknown page", pages: []Page{PageHome, "blog"}, wantErr: ErrUnknownPage},
		{name: "duplicate page", pages: []Page{PageHome, PagePricing, PagePricing}, wantErr: ErrDuplicatePage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewMachine(tt.pages)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pages, m.Pages())
		})
	}
}

func TestMachine_Initial(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(DefaultPages)
	require.NoError(t, err)

	assert.Equal(t, State{Current: PageHome, MenuOpen: false}, m.Initial())
}

func TestMachine_Navigate_ClosesMenu(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(KnownPages)
	require.NoError(t, err)

	for _, from := range m.Pages() {
		for _, to := range m.Pages() {
			for _, open := range []bool{true, false} {
				got, ok := m.Navigate(State{Current: from, MenuOpen: open}, to)
				require.True(t, ok)
				require.Equal(t, State{Current: to, MenuOpen: false}, got, "from %s to %s", from, to)
			}
		}
	}
}

func TestMachine_Navigate_PricingFromHomeWithMenuOpen(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(DefaultPages)
	require.NoError(t, err)

	got, ok := m.Navigate(State{Current: PageHome, MenuOpen: true}, PagePricing)
	require.True(t, ok)
	assert.Equal(t, State{Current: PagePricing, MenuOpen: false}, got)
}

func TestMachine_Navigate_IgnoresUnknownPage(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(DefaultPages)
	require.NoError(t, err)

	start := State{Current: PageFeatures, MenuOpen: true}

	got, ok := m.Navigate(start, "careers")
	assert.False(t, ok)
	assert.Equal(t, start, got)

	// about есть в разметке, но выключен в этом наборе
	got, ok = m.Navigate(start, PageAbout)
	assert.False(t, ok)
	assert.Equal(t, start, got)
}

func TestMachine_ToggleMenu(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(DefaultPages)
	require.NoError(t, err)

	s := m.ToggleMenu(m.Initial())
	assert.Equal(t, State{Current: PageHome, MenuOpen: true}, s)

	s = m.ToggleMenu(s)
	assert.Equal(t, State{Current: PageHome, MenuOpen: false}, s)
}

func TestMachine_Normalize(t *testing.T) {
	t.Parallel()

	m, err := NewMachine(DefaultPages)
	require.NoError(t, err)

	assert.Equal(t, State{Current: PageHome, MenuOpen: true}, m.Normalize(State{Current: PageAbout, MenuOpen: true}))
	assert.Equal(t, State{Current: PagePricing}, m.Normalize(State{Current: PagePricing}))
}

func TestParsePages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Page{PageHome, PagePricing}, ParsePages([]string{" Home ", "PRICING"}))
}

func TestPage_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Security", PageSecurity.Label())
	assert.Equal(t, "careers", Page("careers").Label())
}
