package dto

import "github.com/daftari-app/daftari/internal/models"

// UpdateSettingsRequest is a partial update of the office profile singleton.
type UpdateSettingsRequest struct {
	CompanyName    *string `json:"companyName"`
	CompanyAddress *string `json:"companyAddress"`
	CompanyPhone   *string `json:"companyPhone"`
	CompanyLogo    *string `json:"companyLogo"`
	Currency       *string `json:"currency"`
}

// ToPatch converts the request into a repository patch.
func (r UpdateSettingsRequest) ToPatch() models.SettingsPatch {
	return models.SettingsPatch{
		CompanyName:    r.CompanyName,
		CompanyAddress: r.CompanyAddress,
		CompanyPhone:   r.CompanyPhone,
		CompanyLogo:    r.CompanyLogo,
		Currency:       r.Currency,
	}
}
