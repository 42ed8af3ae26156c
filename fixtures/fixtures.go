// Package fixtures provides valid model instances shared across test
// packages.
package fixtures

import (
	"github.com/paygateio/paypalsdk/models"
)

// GetPayer returns a payer paying by PayPal wallet.
func GetPayer() models.Payer {
	return models.Payer{
		PaymentMethod: models.PaymentMethodPayPal,
	}
}

// GetAmount returns a 150.00 GBP amount without a breakdown.
func GetAmount() models.Amount {
	amount, _ := models.NewAmount(models.CurrencyGBP, "150.00")
	return *amount
}

// GetMoney returns a 150.00 GBP money value.
func GetMoney() models.Money {
	money, _ := models.NewMoney(models.CurrencyGBP, "150.00")
	return *money
}

// GetPayment returns a sale payment with one transaction.
func GetPayment() *models.Payment {
	transaction, _ := models.NewTransaction(GetAmount(), "late filing penalty")
	payment, _ := models.NewPayment(models.PaymentIntentSale, GetPayer(), *transaction)
	return payment
}

// GetAddress returns a valid GB address.
func GetAddress() *models.Address {
	address, _ := models.NewAddress("Crown Way", "Cardiff", "Wales", "CF14 3UZ", "GB")
	return address
}

// GetInvoice returns a draft invoice with a single line.
func GetInvoice() *models.Invoice {
	item, _ := models.NewInvoiceItem("annual filing", 1, GetMoney())
	invoice, _ := models.NewInvoice(models.MerchantInfo{
		Email:        "merchant@example.com",
		BusinessName: "Example Trading Ltd",
	}, *item)
	return invoice
}

// GetBillingPlan returns a fixed billing plan request with one monthly
// payment definition.
func GetBillingPlan() *models.BillingPlan {
	plan, _ := models.NewBillingPlan("Monthly filing plan", "Monthly filing subscription", models.BillingPlanTypeFixed)
	definition, _ := models.NewPaymentDefinition("Regular payment", "MONTH", "1", GetMoney())
	plan.PaymentDefinitions = []models.PaymentDefinition{*definition}
	return plan
}

// GetWebhook returns a webhook registration subscribed to one event type.
func GetWebhook() *models.Webhook {
	webhook, _ := models.NewWebhook("https://example.com/paypal/notifications",
		models.EventType{Name: "PAYMENT.SALE.COMPLETED"})
	return webhook
}
