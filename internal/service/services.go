package service

import (
	"github.com/dmatveev/swarm-console/internal/adapter"
	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/store"
)

// ClientServices bundles the application services for wiring.
type ClientServices struct {
	Session SessionService
	Health  HealthService
}

func NewClientServices(localStore *store.ClientStorages, gateway adapter.ServerGateway, dict *i18n.Dictionary, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Session: NewSessionService(gateway, localStore.Tokens, dict, log.GetChildLogger()),
		Health:  NewHealthService(gateway, log.GetChildLogger()),
	}
}
