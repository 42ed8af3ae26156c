package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// AccountsService drives the v1 partner managed-accounts endpoints.
type AccountsService struct {
	Client client.Executor
}

// CreateAccount creates a managed merchant account.
func (s *AccountsService) CreateAccount(ctx context.Context, account *models.ManagedAccount) (*models.ManagedAccount, error) {
	var created models.ManagedAccount
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/customer/managed-accounts", nil, account, &created); err != nil {
		return nil, fmt.Errorf("error creating managed account: [%w]", err)
	}
	log.Debug("created managed account", log.Data{"account_id": created.AccountID})
	return &created, nil
}

// GetAccount fetches a managed account by ID.
func (s *AccountsService) GetAccount(ctx context.Context, accountID string) (*models.ManagedAccount, error) {
	var account models.ManagedAccount
	path := fmt.Sprintf("/v1/customer/managed-accounts/%s", accountID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &account); err != nil {
		return nil, fmt.Errorf("error getting managed account [%s]: [%w]", accountID, err)
	}
	return &account, nil
}
