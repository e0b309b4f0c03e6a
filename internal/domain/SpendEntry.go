package domain

import "time"

// SpendEntry é o registro diário de gasto de uma conta de anúncios.
// O par (AdAccountID, Date) identifica unicamente uma linha na tabela
// facebook_spend e é o alvo da resolução de conflitos do upsert: uma nova
// escrita para a mesma chave substitui integralmente a linha anterior.
type SpendEntry struct {
	AdAccountID string
	Date        time.Time
	Spend       float64
	Impressions int
	Clicks      int

	// Reservados para um detalhamento futuro por campanha/conjunto/anúncio.
	// Sempre nulos no nível de agregação por conta.
	CampaignName *string
	AdsetName    *string
	AdName       *string
}
