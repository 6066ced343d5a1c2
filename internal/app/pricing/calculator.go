package pricing

import (
	"storefront/internal/app/ds"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LicenseCount - количество пользовательских лицензий, всегда в [MinLicenses, MaxLicenses]
type LicenseCount int

const (
	MinLicenses     LicenseCount = 1
	MaxLicenses     LicenseCount = 100
	DefaultLicenses LicenseCount = 5
)

// ClampLicenses приводит произвольное значение ползунка к допустимому диапазону.
// Значения вне диапазона не отклоняются, а прижимаются к границе.
func ClampLicenses(n int) LicenseCount {
	switch {
	case n < int(MinLicenses):
		return MinLicenses
	case n > int(MaxLicenses):
		return MaxLicenses
	}
	return LicenseCount(n)
}

// Valid сообщает, лежит ли значение в допустимом диапазоне
func (n LicenseCount) Valid() bool {
	return n >= MinLicenses && n <= MaxLicenses
}

// Quote - результат расчета для одного тарифа
type Quote struct {
	Tier         string       `json:"tier"`
	BasePrice    int          `json:"base_price"`
	Licenses     LicenseCount `json:"licenses"`
	Total        int          `json:"total"`
	TotalDisplay string       `json:"total_display"`
	Breakdown    string       `json:"breakdown"`
	Popular      bool         `json:"popular"`
	SliderFill   float64      `json:"slider_fill"` // заполнение дорожки ползунка, %
}

// Calculator считает стоимость тарифа. Не хранит состояния, расчет - чистая функция
type Calculator struct {
	fallback language.Tag
}

func NewCalculator(fallback language.Tag) *Calculator {
	if fallback == language.Und {
		fallback = language.AmericanEnglish
	}
	return &Calculator{fallback: fallback}
}

// Quote считает итог base × n. Количество лицензий прижимается к границам до расчета
func (c *Calculator) Quote(tier ds.PricingTier, n LicenseCount, locale language.Tag) Quote {
	if !n.Valid() {
		n = ClampLicenses(int(n))
	}
	if locale == language.Und {
		locale = c.fallback
	}
	p := message.NewPrinter(locale)

	total := tier.BasePrice * int(n)

	return Quote{
		Tier:         tier.Name,
		BasePrice:    tier.BasePrice,
		Licenses:     n,
		Total:        total,
		TotalDisplay: p.Sprintf("%d", total),
		Breakdown:    p.Sprintf("%d/user/month × %d users", tier.BasePrice, int(n)),
		Popular:      tier.Popular,
		SliderFill:   SliderFill(n),
	}
}

// QuoteAll считает все тарифы в исходном порядке
func (c *Calculator) QuoteAll(tiers []ds.PricingTier, n LicenseCount, locale language.Tag) []Quote {
	quotes := make([]Quote, 0, len(tiers))
	for _, tier := range tiers {
		quotes = append(quotes, c.Quote(tier, n, locale))
	}
	return quotes
}

// SliderFill возвращает долю заполнения дорожки ползунка в процентах (1 -> 0%, 100 -> 100%)
func SliderFill(n LicenseCount) float64 {
	n = ClampLicenses(int(n))
	return float64(n-MinLicenses) * 100 / float64(MaxLicenses-MinLicenses)
}
