package models

// Settings is the office profile singleton. It has no id; a default is
// substituted whenever the persisted value is absent.
type Settings struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyLogo    string `json:"companyLogo,omitempty"`
	Currency       string `json:"currency"`
}

// DefaultSettings returns the settings used before the office has configured
// anything.
func DefaultSettings() Settings {
	return Settings{
		CompanyName: "مكتب الدعاية والإعلان",
		Currency:    "ج.م",
	}
}

// SettingsPatch carries a partial update for settings; nil fields are left
// untouched (shallow merge).
type SettingsPatch struct {
	CompanyName    *string
	CompanyAddress *string
	CompanyPhone   *string
	CompanyLogo    *string
	Currency       *string
}

// Apply merges the patch into the settings.
func (p SettingsPatch) Apply(s *Settings) {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.CompanyAddress != nil {
		s.CompanyAddress = *p.CompanyAddress
	}
	if p.CompanyPhone != nil {
		s.CompanyPhone = *p.CompanyPhone
	}
	if p.CompanyLogo != nil {
		s.CompanyLogo = *p.CompanyLogo
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
}
