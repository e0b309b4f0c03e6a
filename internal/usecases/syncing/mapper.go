package syncing

import (
	"time"

	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-spend-sync/internal/domain"
	"github.com/vfg2006/fb-spend-sync/pkg/utils"
)

// MapRows converte as linhas cruas da API no formato persistido.
// Função pura e total: métricas ausentes ou não numéricas viram 0, nada é
// filtrado nem deduplicado. A resolução de conflitos do banco é o único
// mecanismo de deduplicação. Os campos de campanha/conjunto/anúncio ficam
// nulos até existir o detalhamento por anúncio.
func MapRows(rows []metadomain.InsightRow) []*domain.SpendEntry {
	entries := make([]*domain.SpendEntry, 0, len(rows))

	for _, row := range rows {
		// date_start sempre vem no formato YYYY-MM-DD; uma data inválida vira zero
		date, _ := time.Parse(time.DateOnly, row.DateStart)

		entries = append(entries, &domain.SpendEntry{
			AdAccountID: row.AccountID,
			Date:        date,
			Spend:       utils.ParseFloatOrZero(row.Spend),
			Impressions: utils.ParseIntOrZero(row.Impressions),
			Clicks:      utils.ParseIntOrZero(row.Clicks),
		})
	}

	return entries
}
