package ds

// FeatureEntry описывает одну возможность продукта в сетке и на странице features
type FeatureEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Details     string `json:"details" yaml:"details"`
	Icon        string `json:"icon" yaml:"icon"` // имя иконки lucide
}

// TargetAudience - карточка "Built For Legal Professionals"
type TargetAudience struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
