package ds

type SecurityHighlight struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type SecurityPolicy struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Details     string `json:"details" yaml:"details"`
}

// TeamTip - совет из блока "Security Tips for Your Team"
type TeamTip struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

type ContactInfo struct {
	Address string   `json:"address" yaml:"address"`
	Email   string   `json:"email" yaml:"email"`
	Phones  []string `json:"phones" yaml:"phones"`
	Website string   `json:"website" yaml:"website"`
}
