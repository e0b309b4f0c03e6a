package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-spend-sync/internal/config"
)

type Client interface {
	GetAccountSpendInsights(accountID string, since, until time.Time) ([]metadomain.InsightRow, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}
