package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/fixtures"
	"github.com/paygateio/paypalsdk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitActivatePlan(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	billingService := BillingService{Client: mockExecutor}

	Convey("Activation sends a single replace patch to ACTIVE", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPatch, "/v1/payments/billing-plans/P-123", gomock.Nil(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				patches := body.([]models.Patch)
				So(len(patches), ShouldEqual, 1)
				So(patches[0].Operation, ShouldEqual, models.PatchReplace)

				encoded, err := json.Marshal(patches[0])
				So(err, ShouldBeNil)
				So(string(encoded), ShouldEqual, `{"op":"replace","path":"/","value":"ACTIVE"}`)
				return nil
			})

		So(billingService.ActivatePlan(context.Background(), "P-123"), ShouldBeNil)
	})
}

func TestUnitAgreementStateChanges(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	billingService := BillingService{Client: mockExecutor}

	Convey("Suspend, reactivate and cancel post to their action paths", t, func() {
		note := models.AgreementStateDescriptor{Note: "payment overdue"}

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/billing-agreements/I-1/suspend", gomock.Nil(), note, gomock.Nil()).
			Return(nil)
		So(billingService.SuspendAgreement(context.Background(), "I-1", "payment overdue"), ShouldBeNil)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/billing-agreements/I-1/re-activate", gomock.Nil(), note, gomock.Nil()).
			Return(nil)
		So(billingService.ReactivateAgreement(context.Background(), "I-1", "payment overdue"), ShouldBeNil)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/billing-agreements/I-1/cancel", gomock.Nil(), note, gomock.Nil()).
			Return(nil)
		So(billingService.CancelAgreement(context.Background(), "I-1", "payment overdue"), ShouldBeNil)
	})
}

func TestUnitNextInvoiceNumber(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	invoicingService := InvoicingService{Client: mockExecutor}

	Convey("An empty number response is rejected", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/invoicing/invoices/next-invoice-number", gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(nil)

		_, err := invoicingService.NextInvoiceNumber(context.Background())
		So(err, ShouldNotBeNil)
	})

	Convey("A populated number is returned", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/invoicing/invoices/next-invoice-number", gomock.Nil(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				out.(*models.InvoiceNumber).Number = "INV-0042"
				return nil
			})

		number, err := invoicingService.NextInvoiceNumber(context.Background())
		So(err, ShouldBeNil)
		So(number.Number, ShouldEqual, "INV-0042")
	})
}

func TestUnitSendInvoice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	invoicingService := InvoicingService{Client: mockExecutor}

	Convey("Sending posts to the send action with no body", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/invoicing/invoices/INV2-1/send", gomock.Nil(), gomock.Nil(), gomock.Nil()).
			Return(nil)

		So(invoicingService.SendInvoice(context.Background(), "INV2-1"), ShouldBeNil)
	})
}

func TestUnitVerifySignature(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	webhooksService := WebhooksService{Client: mockExecutor}

	Convey("A SUCCESS verification is returned", t, func() {
		request := &models.VerifyWebhookSignatureRequest{WebhookID: "WH-1"}

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/notifications/verify-webhook-signature", gomock.Nil(), request, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				out.(*models.VerifyWebhookSignatureResponse).VerificationStatus = models.VerificationSuccess
				return nil
			})

		response, err := webhooksService.VerifySignature(context.Background(), request)
		So(err, ShouldBeNil)
		So(response.VerificationStatus, ShouldEqual, models.VerificationSuccess)
	})

	Convey("A response without a status is rejected", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/notifications/verify-webhook-signature", gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := webhooksService.VerifySignature(context.Background(), &models.VerifyWebhookSignatureRequest{})
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCreateWebhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	webhooksService := WebhooksService{Client: mockExecutor}

	Convey("A webhook registration is posted and decoded", t, func() {
		webhook := fixtures.GetWebhook()

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/notifications/webhooks", gomock.Nil(), webhook, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				created := out.(*models.Webhook)
				*created = *webhook
				created.ID = "WH-9"
				return nil
			})

		created, err := webhooksService.CreateWebhook(context.Background(), webhook)
		So(err, ShouldBeNil)
		So(created.ID, ShouldEqual, "WH-9")
	})
}

func TestUnitDisputeActions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	disputesService := DisputesService{Client: mockExecutor}

	Convey("Accepting a claim posts to the accept-claim action", t, func() {
		request, err := models.NewAcceptClaimRequest("refunding in full", nil)
		So(err, ShouldBeNil)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/customer/disputes/D-1/accept-claim", gomock.Nil(), request, gomock.Nil()).
			Return(nil)

		So(disputesService.AcceptClaim(context.Background(), "D-1", request), ShouldBeNil)
	})

	Convey("Appealing posts to the appeal action", t, func() {
		appeal, err := models.NewAppealRequest("the item was delivered")
		So(err, ShouldBeNil)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/customer/disputes/D-1/appeal", gomock.Nil(), appeal, gomock.Nil()).
			Return(nil)

		So(disputesService.Appeal(context.Background(), "D-1", appeal), ShouldBeNil)
	})
}

func TestUnitGetUserInfo(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	identityService := IdentityService{Client: mockExecutor}

	Convey("The openid schema is requested and the profile decoded", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/identity/openidconnect/userinfo",
				url.Values{"schema": {"openid"}}, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				info := out.(*models.UserInfo)
				info.UserID = "user-1"
				info.Email = "payer@example.com"
				return nil
			})

		info, err := identityService.GetUserInfo(context.Background())
		So(err, ShouldBeNil)
		So(info.UserID, ShouldEqual, "user-1")
	})
}

func TestUnitListActivities(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	activitiesService := ActivitiesService{Client: mockExecutor}

	Convey("The page size is rendered into the query", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/activities/activities", gomock.Any(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				So(query.Get("page_size"), ShouldEqual, "20")
				return nil
			})

		_, err := activitiesService.ListActivities(context.Background(), client.ListParams{PageSize: 20})
		So(err, ShouldBeNil)
	})
}

func TestUnitCreateAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	accountsService := AccountsService{Client: mockExecutor}

	Convey("A managed account is posted and decoded", t, func() {
		account, err := models.NewManagedAccount("Example Trading Ltd", models.BusinessInfo{BusinessName: "Example Trading"})
		So(err, ShouldBeNil)

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/customer/managed-accounts", gomock.Nil(), account, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				created := out.(*models.ManagedAccount)
				*created = *account
				created.AccountID = "ACC-1"
				return nil
			})

		created, err := accountsService.CreateAccount(context.Background(), account)
		So(err, ShouldBeNil)
		So(created.AccountID, ShouldEqual, "ACC-1")
	})
}
