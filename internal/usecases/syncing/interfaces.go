package syncing

import (
	"time"

	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-spend-sync/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// InsightFetcher busca as linhas diárias de gasto de uma conta na API do Meta,
// já com a paginação resolvida
type InsightFetcher interface {
	GetAccountSpendInsights(accountID string, since, until time.Time) ([]metadomain.InsightRow, error)
}

// SpendUpserter grava registros de gasto resolvendo conflitos pela chave
// composta (ad_account_id, date)
type SpendUpserter interface {
	BulkUpsert(entries []*domain.SpendEntry) (int, error)
}
