package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/fixtures"
	"github.com/paygateio/paypalsdk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCreatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("A created payment is decoded from the response", t, func() {
		payment := fixtures.GetPayment()

		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/payment", gomock.Nil(), payment, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				created := out.(*models.Payment)
				*created = *payment
				created.ID = "PAY-1"
				created.State = models.PaymentStateCreated
				return nil
			})

		created, err := paymentsService.CreatePayment(context.Background(), payment)
		So(err, ShouldBeNil)
		So(created.ID, ShouldEqual, "PAY-1")
		So(created.State, ShouldEqual, models.PaymentStateCreated)
	})

	Convey("An executor failure is wrapped with context", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/payment", gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("boom"))

		_, err := paymentsService.CreatePayment(context.Background(), fixtures.GetPayment())
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "error creating payment: [boom]")
	})
}

func TestUnitGetPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("The payment ID is embedded in the path", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/payments/payment/PAY-42", gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(nil)

		_, err := paymentsService.GetPayment(context.Background(), "PAY-42")
		So(err, ShouldBeNil)
	})
}

func TestUnitListPayments(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("List params are rendered into the query", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/payments/payment", gomock.Any(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				So(query.Get("count"), ShouldEqual, "10")
				So(query.Get("sort_order"), ShouldEqual, "descending")
				return nil
			})

		params := client.ListParams{Count: 10, SortOrder: client.SortDescending}
		_, err := paymentsService.ListPayments(context.Background(), params)
		So(err, ShouldBeNil)
	})
}

func TestUnitExecutePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("The payer ID is sent in the execution body", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/payment/PAY-1/execute", gomock.Nil(),
				models.PaymentExecution{PayerID: "PAYER-7"}, gomock.Any()).
			Return(nil)

		_, err := paymentsService.ExecutePayment(context.Background(), "PAY-1", "PAYER-7")
		So(err, ShouldBeNil)
	})
}

func TestUnitGetSale(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("A sale without its required ID is rejected", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/payments/sale/SALE-1", gomock.Nil(), gomock.Nil(), gomock.Any()).
			Return(nil)

		_, err := paymentsService.GetSale(context.Background(), "SALE-1")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "missing required fields")
	})

	Convey("A complete sale is returned", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodGet, "/v1/payments/sale/SALE-1", gomock.Nil(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				sale := out.(*models.Sale)
				sale.ID = "SALE-1"
				sale.Amount = fixtures.GetAmount()
				sale.State = models.SaleStateCompleted
				return nil
			})

		sale, err := paymentsService.GetSale(context.Background(), "SALE-1")
		So(err, ShouldBeNil)
		So(sale.State, ShouldEqual, models.SaleStateCompleted)
	})
}

func TestUnitRefundSale(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockExecutor := client.NewMockExecutor(mockCtrl)
	paymentsService := PaymentsService{Client: mockExecutor}

	Convey("A nil request becomes an empty body for a full refund", t, func() {
		mockExecutor.EXPECT().
			Execute(gomock.Any(), http.MethodPost, "/v1/payments/sale/SALE-1/refund", gomock.Nil(),
				&models.RefundRequest{}, gomock.Any()).
			DoAndReturn(func(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
				refund := out.(*models.Refund)
				refund.ID = "REF-1"
				refund.State = models.RefundStateCompleted
				return nil
			})

		refund, err := paymentsService.RefundSale(context.Background(), "SALE-1", nil)
		So(err, ShouldBeNil)
		So(refund.ID, ShouldEqual, "REF-1")
	})
}
