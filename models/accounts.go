package models

import (
	"github.com/paygateio/paypalsdk/validation"
)

var (
	accountName140 = validation.MaxLength(140)
	url2048        = validation.MaxLength(2048)
)

// ManagedAccount is a partner-managed merchant account.
type ManagedAccount struct {
	AccountID     string        `json:"account_id,omitempty"`
	LegalFullName string        `json:"legal_full_name,omitempty"`
	BusinessInfo  *BusinessInfo `json:"business_info,omitempty"`
	OwnerInfo     *OwnerInfo    `json:"owner_info,omitempty"`
	Status        string        `json:"status,omitempty"`
	CreateTime    *Timestamp    `json:"create_time,omitempty"`
	Links         []Link        `json:"links,omitempty"`
}

// NewManagedAccount creates a validated account creation request.
func NewManagedAccount(legalFullName string, business BusinessInfo) (*ManagedAccount, error) {
	if err := validation.Combine(
		validation.And(validation.NotEmpty(), accountName140).Validate("legal_full_name", legalFullName),
		accountName140.Validate("business_info.business_name", business.BusinessName),
	); err != nil {
		return nil, err
	}
	return &ManagedAccount{LegalFullName: legalFullName, BusinessInfo: &business}, nil
}

// BusinessInfo describes the merchant's business. The monthly volume is a
// currency range and the online revenue share a percentage range, both
// validated on construction and decode.
type BusinessInfo struct {
	BusinessName         string        `json:"business_name,omitempty"`
	BusinessType         string        `json:"business_type,omitempty"`
	Address              *Address      `json:"address,omitempty"`
	Phone                *TypedPhone   `json:"phone,omitempty"`
	WebsiteURL           string        `json:"website_url,omitempty"`
	AverageMonthlyVolume *MoneyRange   `json:"average_monthly_volume_range,omitempty"`
	RevenueFromOnline    *PercentRange `json:"percentage_revenue_from_online_sales,omitempty"`
	CustomData           KeyValueList  `json:"custom_data,omitempty"`
}

// SetWebsiteURL sets the business website address.
func (b *BusinessInfo) SetWebsiteURL(url string) error {
	if err := url2048.Validate("website_url", url); err != nil {
		return err
	}
	b.WebsiteURL = url
	return nil
}

// OwnerInfo identifies the account owner.
type OwnerInfo struct {
	Email       string   `json:"email,omitempty"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	DateOfBirth *Date    `json:"date_of_birth,omitempty"`
	Address     *Address `json:"home_address,omitempty"`
}
