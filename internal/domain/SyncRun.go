package domain

import "time"

// SyncAccountStatus é o estado final do processamento de uma conta
type SyncAccountStatus string

const (
	SyncAccountStatusDone   SyncAccountStatus = "done"
	SyncAccountStatusFailed SyncAccountStatus = "failed"
)

// SyncAccountResult é o desfecho do processamento de uma conta na rodada:
// sucesso com a contagem de linhas gravadas, ou falha com o motivo
type SyncAccountResult struct {
	AccountID string
	Status    SyncAccountStatus
	Rows      int
	Spend     float64
	Err       error
}

// SyncRunSummary consolida o resultado de uma execução completa do job
type SyncRunSummary struct {
	RunID       string
	Since       time.Time
	Until       time.Time
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []SyncAccountResult
}

// Failures retorna os resultados das contas que falharam na rodada
func (s *SyncRunSummary) Failures() []SyncAccountResult {
	failures := make([]SyncAccountResult, 0)
	for _, result := range s.Results {
		if result.Status == SyncAccountStatusFailed {
			failures = append(failures, result)
		}
	}
	return failures
}

// TotalRows soma as linhas gravadas por todas as contas sincronizadas
func (s *SyncRunSummary) TotalRows() int {
	total := 0
	for _, result := range s.Results {
		total += result.Rows
	}
	return total
}

// TotalSpend soma o gasto de todas as contas sincronizadas
func (s *SyncRunSummary) TotalSpend() float64 {
	total := 0.0
	for _, result := range s.Results {
		total += result.Spend
	}
	return total
}
