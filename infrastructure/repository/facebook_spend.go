package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/fb-spend-sync/infrastructure/database/postgres"
	"github.com/vfg2006/fb-spend-sync/internal/domain"
)

const (
	facebookSpendTable = "facebook_spend fs"

	// lib/pq limita um statement a 65535 parâmetros; com 8 colunas por linha,
	// lotes maiores que isso precisam ser divididos. A semântica de conflito
	// por (ad_account_id, date) vale por linha, então dividir é seguro.
	upsertChunkSize = 500
)

type FacebookSpendRepository interface {
	BulkUpsert(entries []*domain.SpendEntry) (int, error)
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.SpendEntry, error)
	GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.SpendEntry, error)
	DeleteOlderThan(days int) (int64, error)
}

type facebookSpendRepository struct {
	conn postgres.Conn
}

func NewFacebookSpendRepository(conn postgres.Conn) FacebookSpendRepository {
	return &facebookSpendRepository{
		conn: conn,
	}
}

// BulkUpsert grava os registros na tabela facebook_spend resolvendo conflitos
// pela chave composta (ad_account_id, date): linhas com chave existente são
// substituídas por inteiro, linhas novas são inseridas. Todos os lotes rodam
// numa única transação, então uma falha no meio não deixa lotes anteriores
// gravados. Retorna a contagem de registros submetidos, não a de linhas
// efetivamente alteradas.
func (r *facebookSpendRepository) BulkUpsert(entries []*domain.SpendEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	err := r.conn.RunInTransaction(context.Background(), func(tx postgres.Queryer) error {
		for start := 0; start < len(entries); start += upsertChunkSize {
			end := min(start+upsertChunkSize, len(entries))
			if err := r.upsertChunk(tx, entries[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(entries), nil
}

func (r *facebookSpendRepository) upsertChunk(tx postgres.Queryer, entries []*domain.SpendEntry) error {
	builder := squirrel.StatementBuilder.
		Insert("facebook_spend").
		Columns("ad_account_id", "date", "spend", "impressions", "clicks", "campaign_name", "adset_name", "ad_name")

	for _, entry := range entries {
		builder = builder.Values(
			entry.AdAccountID,
			entry.Date.Format("2006-01-02"),
			entry.Spend,
			entry.Impressions,
			entry.Clicks,
			entry.CampaignName,
			entry.AdsetName,
			entry.AdName,
		)
	}

	builder = builder.Suffix(`
		ON CONFLICT (ad_account_id, date) DO UPDATE SET
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			campaign_name = EXCLUDED.campaign_name,
			adset_name = EXCLUDED.adset_name,
			ad_name = EXCLUDED.ad_name,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return &StoreWriteError{Err: fmt.Errorf("erro ao construir a query: %w", err)}
	}

	_, err = tx.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return &StoreWriteError{Err: fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)}
		}
		return &StoreWriteError{Err: err}
	}

	return nil
}

// getByAccountIDAndDateQuery monta o SELECT pela chave composta
func getByAccountIDAndDateQuery(accountID string, date time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("fs.ad_account_id, fs.date, fs.spend, fs.impressions, fs.clicks, fs.campaign_name, fs.adset_name, fs.ad_name").
		From(facebookSpendTable).
		Where(squirrel.Eq{"fs.ad_account_id": accountID, "fs.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *facebookSpendRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.SpendEntry, error) {
	query, args, err := getByAccountIDAndDateQuery(accountID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de gasto: %w", err)
	}

	return entry, nil
}

// getByDateRangeQuery monta o SELECT do intervalo, ordenado por data
func getByDateRangeQuery(accountID string, startDate, endDate time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("fs.ad_account_id, fs.date, fs.spend, fs.impressions, fs.clicks, fs.campaign_name, fs.adset_name, fs.ad_name").
		From(facebookSpendTable).
		Where(squirrel.Eq{"fs.ad_account_id": accountID}).
		Where(squirrel.GtOrEq{"fs.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"fs.date": endDate.Format("2006-01-02")}).
		OrderBy("fs.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *facebookSpendRepository) GetByDateRange(accountID string, startDate, endDate time.Time) ([]*domain.SpendEntry, error) {
	query, args, err := getByDateRangeQuery(accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SpendEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de gasto: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// deleteOlderThanQuery monta o DELETE de retenção a partir da data de corte
func deleteOlderThanQuery(cutoffDate string) (string, []interface{}, error) {
	return squirrel.
		Delete("facebook_spend").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *facebookSpendRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := deleteOlderThanQuery(cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *facebookSpendRepository) scanEntry(row *sql.Row) (*domain.SpendEntry, error) {
	entry := &domain.SpendEntry{}

	err := row.Scan(
		&entry.AdAccountID,
		&entry.Date,
		&entry.Spend,
		&entry.Impressions,
		&entry.Clicks,
		&entry.CampaignName,
		&entry.AdsetName,
		&entry.AdName,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *facebookSpendRepository) scanEntryRows(rows *sql.Rows) (*domain.SpendEntry, error) {
	entry := &domain.SpendEntry{}

	err := rows.Scan(
		&entry.AdAccountID,
		&entry.Date,
		&entry.Spend,
		&entry.Impressions,
		&entry.Clicks,
		&entry.CampaignName,
		&entry.AdsetName,
		&entry.AdName,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
