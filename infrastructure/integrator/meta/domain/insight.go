package metadomain

// InsightRow é uma linha diária agregada de métricas de uma conta,
// exatamente como a API de insights do Meta devolve (números como strings).
type InsightRow struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

// ResponseInsights é o envelope de uma página de resultados
type ResponseInsights struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

// Paging carrega o cursor de continuação. Next é uma URL completa com a
// própria query embutida; a ausência dela indica a última página.
type Paging struct {
	Next string `json:"next"`
}
