package ds

// PricingTier - тарифный план. Features - свободный текст, не ссылки на FeatureEntry
type PricingTier struct {
	Name      string   `json:"name" yaml:"name"`
	BasePrice int      `json:"base_price" yaml:"base_price"` // за пользователя в месяц
	Features  []string `json:"features" yaml:"features"`
	Popular   bool     `json:"popular" yaml:"popular"`
}
