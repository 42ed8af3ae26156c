package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// ActivitiesService drives the v1 account activity feed.
type ActivitiesService struct {
	Client client.Executor
}

// ListActivities fetches a page of account activities.
func (s *ActivitiesService) ListActivities(ctx context.Context, params client.ListParams) (*models.ActivityList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building activity list query: [%w]", err)
	}
	var list models.ActivityList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/activities/activities", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing activities: [%w]", err)
	}
	return &list, nil
}
