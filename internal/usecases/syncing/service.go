package syncing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fb-spend-sync/internal/config"
	"github.com/vfg2006/fb-spend-sync/internal/domain"
	"github.com/vfg2006/fb-spend-sync/pkg/log"
	"github.com/vfg2006/fb-spend-sync/pkg/utils"
)

// Config representa a configuração de uma rodada de sincronização
type Config struct {
	AccountIDs            []string
	Since                 time.Time
	Until                 time.Time
	Strict                bool
	MaxConcurrentAccounts int
}

// Service orquestra a sincronização de gastos: para cada conta configurada,
// busca os insights na API do Meta, mapeia para o formato persistido e grava
// no banco com upsert. A falha de uma conta nunca impede as demais.
type Service struct {
	config   Config
	fetcher  InsightFetcher
	upserter SpendUpserter
}

func NewService(
	appConfig *config.Config,
	fetcher InsightFetcher,
	upserter SpendUpserter,
) *Service {
	syncConfig := Config{
		AccountIDs:            appConfig.Sync.AccountIDs,
		Since:                 appConfig.Sync.SinceDate,
		Until:                 appConfig.Sync.UntilDate,
		Strict:                appConfig.Sync.Strict,
		MaxConcurrentAccounts: appConfig.Sync.MaxConcurrentAccounts,
	}

	logrus.WithFields(logrus.Fields{
		"accounts":                len(syncConfig.AccountIDs),
		"since":                   syncConfig.Since.Format(time.DateOnly),
		"until":                   syncConfig.Until.Format(time.DateOnly),
		"strict":                  syncConfig.Strict,
		"max_concurrent_accounts": syncConfig.MaxConcurrentAccounts,
	}).Info("Configuração da sincronização de gastos carregada")

	return &Service{
		config:   syncConfig,
		fetcher:  fetcher,
		upserter: upserter,
	}
}

// SyncAll processa todas as contas configuradas e devolve o resumo da rodada.
// Erros tipados (API do Meta, gravação no banco) são registrados por conta e
// não interrompem o processamento; em modo estrito, qualquer conta em falha
// faz a rodada retornar erro depois que todas foram tentadas. Erros não
// tipados abortam a rodada imediatamente após os workers terminarem.
func (s *Service) SyncAll(ctx context.Context) (*domain.SyncRunSummary, error) {
	runID, _ := utils.GenerateRunID()

	summary := &domain.SyncRunSummary{
		RunID:     runID,
		Since:     s.config.Since,
		Until:     s.config.Until,
		StartedAt: time.Now(),
		Results:   make([]domain.SyncAccountResult, len(s.config.AccountIDs)),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"run_id":   runID,
		"accounts": len(s.config.AccountIDs),
		"since":    s.config.Since.Format(time.DateOnly),
		"until":    s.config.Until.Format(time.DateOnly),
	}).Info("Iniciando sincronização de gastos do Facebook")

	maxWorkers := s.config.MaxConcurrentAccounts
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	// Fan-out limitado: cada conta é uma tarefa independente escrevendo no
	// próprio slot do resumo. A paginação dentro de uma conta continua
	// sequencial, cada cursor depende da resposta anterior.
	semaphore := make(chan struct{}, maxWorkers)
	unexpected := make([]error, len(s.config.AccountIDs))
	var wg sync.WaitGroup

	for i, accountID := range s.config.AccountIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(slot int, accountID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			summary.Results[slot], unexpected[slot] = s.syncAccount(ctx, accountID)
		}(i, accountID)
	}

	wg.Wait()
	summary.CompletedAt = time.Now()

	for _, err := range unexpected {
		if err != nil {
			return summary, err
		}
	}

	s.logSummary(ctx, summary)

	if failures := summary.Failures(); s.config.Strict && len(failures) > 0 {
		return summary, errors.Errorf("sincronização concluída com %d conta(s) em falha", len(failures))
	}

	return summary, nil
}

// syncAccount executa Fetch -> Map -> Write para uma conta. O segundo retorno
// só é não-nulo para erros fora da taxonomia tipada.
func (s *Service) syncAccount(ctx context.Context, accountID string) (domain.SyncAccountResult, error) {
	logger := log.ForContext(ctx).WithField("account_id", accountID)
	logger.Info("Buscando insights de gasto para conta")

	rows, err := s.fetcher.GetAccountSpendInsights(accountID, s.config.Since, s.config.Until)
	if err != nil {
		if !isRecoverableAccountError(err) {
			return domain.SyncAccountResult{}, errors.Wrapf(err, "erro inesperado ao buscar insights da conta %s", accountID)
		}

		logger.WithError(err).Error("Erro ao buscar insights de gasto da conta")
		return domain.SyncAccountResult{
			AccountID: accountID,
			Status:    domain.SyncAccountStatusFailed,
			Err:       err,
		}, nil
	}

	entries := MapRows(rows)

	count, err := s.upserter.BulkUpsert(entries)
	if err != nil {
		if !isRecoverableAccountError(err) {
			return domain.SyncAccountResult{}, errors.Wrapf(err, "erro inesperado ao gravar gastos da conta %s", accountID)
		}

		logger.WithError(err).Error("Erro ao gravar gastos da conta no banco")
		return domain.SyncAccountResult{
			AccountID: accountID,
			Status:    domain.SyncAccountStatusFailed,
			Err:       err,
		}, nil
	}

	spend := 0.0
	for _, entry := range entries {
		spend += entry.Spend
	}

	logger.WithFields(log.Fields{
		"rows":  count,
		"spend": utils.RoundWithTwoDecimalPlace(spend),
	}).Info("Gastos da conta gravados com sucesso")

	return domain.SyncAccountResult{
		AccountID: accountID,
		Status:    domain.SyncAccountStatusDone,
		Rows:      count,
		Spend:     spend,
	}, nil
}

// logSummary registra o desfecho por conta e o consolidado da rodada
func (s *Service) logSummary(ctx context.Context, summary *domain.SyncRunSummary) {
	logger := log.ForContext(ctx).WithField("run_id", summary.RunID)

	for _, result := range summary.Results {
		if result.Status == domain.SyncAccountStatusFailed {
			logger.WithFields(log.Fields{
				"account_id": result.AccountID,
				"error":      result.Err.Error(),
			}).Warn("Conta não sincronizada")
			continue
		}

		logger.WithFields(log.Fields{
			"account_id": result.AccountID,
			"rows":       result.Rows,
		}).Info("Conta sincronizada")
	}

	logger.WithFields(log.Fields{
		"accounts":    len(summary.Results),
		"failures":    len(summary.Failures()),
		"total_rows":  summary.TotalRows(),
		"total_spend": utils.RoundWithTwoDecimalPlace(summary.TotalSpend()),
		"duration":    summary.CompletedAt.Sub(summary.StartedAt).String(),
	}).Info("Sincronização de gastos do Facebook concluída")
}
