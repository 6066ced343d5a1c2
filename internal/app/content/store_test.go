package content

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultCatalog()))

	s := Default()
	assert.Len(t, s.Features(), 6)
	assert.Len(t, s.TargetAudiences(), 4)
	assert.Len(t, s.PricingTiers(), 3)
	assert.Len(t, s.SecurityHighlights(), 6)
	assert.Len(t, s.SecurityPolicies(), 4)
	assert.Len(t, s.PasswordTips(), 5)
	assert.Len(t, s.LoginSafeguards(), 3)
	assert.Len(t, s.TeamTips(), 4)
	assert.Equal(t, "info@legistant.com", s.Contact().Email)
}

func TestDefaultCatalog_AtMostOnePopularTier(t *testing.T) {
	t.Parallel()

	popular := 0
	for _, tier := range Default().PricingTiers() {
		assert.Positive(t, tier.BasePrice, tier.Name)
		if tier.Popular {
			popular++
		}
	}
	assert.LessOrEqual(t, popular, 1)

	tier, ok := Default().PopularTier()
	require.True(t, ok)
	assert.Equal(t, "Professional", tier.Name)
	assert.Equal(t, 35, tier.BasePrice)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Catalog)
		errMsg string
	}{
		{
			name:   "empty feature title",
			mutate: func(c *Catalog) { c.Features[0].Title = " " },
			errMsg: "feature 0: empty title",
		},
		{
			name:   "empty feature description",
			mutate: func(c *Catalog) { c.Features[2].Description = "" },
			errMsg: "feature 2: empty description",
		},
		{
			name:   "zero base price",
			mutate: func(c *Catalog) { c.PricingTiers[0].BasePrice = 0 },
			errMsg: "base price must be positive",
		},
		{
			name: "two popular tiers",
			mutate: func(c *Catalog) {
				c.PricingTiers[0].Popular = true
				c.PricingTiers[1].Popular = true
			},
			errMsg: "at most one tier may be popular",
		},
		{
			name:   "duplicate tier name",
			mutate: func(c *Catalog) { c.PricingTiers[2].Name = "starter" },
			errMsg: "duplicate name",
		},
		{
			name:   "no tiers",
			mutate: func(c *Catalog) { c.PricingTiers = nil },
			errMsg: "no pricing tiers",
		},
		{
			name:   "empty policy title",
			mutate: func(c *Catalog) { c.SecurityPolicies[1].Title = "" },
			errMsg: "security policy 1: empty title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := DefaultCatalog()
			tt.mutate(&c)

			err := Validate(c)
			require.ErrorIs(t, err, ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.errMsg)

			_, err = New(c)
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestValidate_ZeroPopularTiersAllowed(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	for i := range c.PricingTiers {
		c.PricingTiers[i].Popular = false
	}
	require.NoError(t, Validate(c))

	s, err := New(c)
	require.NoError(t, err)
	_, ok := s.PopularTier()
	assert.False(t, ok)
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := Default()

	tiers := s.PricingTiers()
	tiers[0].BasePrice = 1
	tiers[0].Features[0] = "changed"

	features := s.Features()
	features[0].Title = "changed"

	contact := s.Contact()
	contact.Phones[0] = "changed"

	again := s.PricingTiers()
	assert.Equal(t, 15, again[0].BasePrice)
	assert.Equal(t, "Client Appointment Scheduling", again[0].Features[0])
	assert.Equal(t, "Client Appointment Scheduling", s.Features()[0].Title)
	assert.Equal(t, "+94 77 627 3901", s.Contact().Phones[0])
}

func TestStore_New_DetachesFromInput(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	s, err := New(c)
	require.NoError(t, err)

	c.PricingTiers[1].Features[0] = "changed"
	assert.Equal(t, "All Starter Features", s.PricingTiers()[1].Features[0])
}

func TestStore_Tier(t *testing.T) {
	t.Parallel()

	s := Default()

	tier, err := s.Tier("enterprise")
	require.NoError(t, err)
	assert.Equal(t, ds.PricingTier{
		Name:      "Enterprise",
		BasePrice: 65,
		Features:  tier.Features,
	}, tier)

	_, err = s.Tier("Platinum")
	require.ErrorIs(t, err, ErrTierNotFound)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		t.Parallel()

		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCatalog(), s.Catalog())
	})

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "content.yaml")
		body := `
features:
  - title: Matter Tracking
    description: Track every matter
    icon: briefcase
pricing_tiers:
  - name: Solo
    base_price: 20
    popular: true
    features: [One attorney]
  - name: Firm
    base_price: 50
    features: [Unlimited attorneys]
contact:
  email: hello@example.com
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		s, err := Load(path)
		require.NoError(t, err)
		require.Len(t, s.Features(), 1)
		assert.Equal(t, "Matter Tracking", s.Features()[0].Title)
		require.Len(t, s.PricingTiers(), 2)
		assert.Equal(t, 20, s.PricingTiers()[0].BasePrice)
		assert.True(t, s.PricingTiers()[0].Popular)
		assert.Equal(t, "hello@example.com", s.Contact().Email)
	})

	t.Run("invalid yaml content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "content.yaml")
		body := `
pricing_tiers:
  - name: Free
    base_price: 0
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
