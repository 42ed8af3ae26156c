package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// IdentityService drives the OpenID Connect identity endpoints.
type IdentityService struct {
	Client client.Executor
}

// GetUserInfo fetches the profile of the authenticated user.
func (s *IdentityService) GetUserInfo(ctx context.Context) (*models.UserInfo, error) {
	query := url.Values{"schema": {"openid"}}
	var info models.UserInfo
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/identity/openidconnect/userinfo", query, nil, &info); err != nil {
		return nil, fmt.Errorf("error getting user info: [%w]", err)
	}
	if err := models.CheckRequired(info); err != nil {
		return nil, fmt.Errorf("user info response missing required fields: [%w]", err)
	}
	return &info, nil
}
