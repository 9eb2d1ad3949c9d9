package support

import (
	"context"

	"github.com/notifyhq/notify-admin/internal/notifyapi"
)

// ServiceLister is the account/service-liveness collaborator.
type ServiceLister interface {
	ServicesForUser(ctx context.Context, userID string) ([]notifyapi.Service, error)
}

// HasLiveServices reports whether the account holds at least two services out
// of trial mode. Exactly one live service counts as none.
func HasLiveServices(services []notifyapi.Service) bool {
	live := 0
	for _, svc := range services {
		if !svc.Restricted {
			live++
		}
	}
	return live > 1
}
