package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	insightFields = "account_id,account_name,spend,impressions,clicks,date_start,date_stop"

	// Limite alto de página para minimizar o número de requisições
	insightPageLimit = "5000"
)

// GetAccountSpendInsights busca todas as linhas diárias de gasto de uma conta
// no intervalo [since, until], seguindo a paginação até a última página.
// A API é instruída a emitir uma linha por dia via time_increment=1, então o
// intervalo é enviado inteiro, sem decomposição dia a dia. Não há retry
// interno: qualquer falha vira *metadomain.APIError e sobe para o chamador.
func (c *MetaClient) GetAccountSpendInsights(accountID string, since, until time.Time) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly)))
	params.Add("level", "account")
	params.Add("time_increment", "1")
	params.Add("limit", insightPageLimit)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	next := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	rows := make([]metadomain.InsightRow, 0)
	pages := 0

	for next != "" {
		page, err := c.fetchInsightPage(accountID, next)
		if err != nil {
			return nil, err
		}

		rows = append(rows, page.Data...)
		pages++

		// O cursor é uma URL completa com a query embutida;
		// os parâmetros originais não são reanexados.
		next = page.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"rows":       len(rows),
		"pages":      pages,
	}).Debug("Insights de gasto obtidos da API do Meta")

	return rows, nil
}

func (c *MetaClient) fetchInsightPage(accountID, pageURL string) (*metadomain.ResponseInsights, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, metadomain.NewTransportError(accountID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metadomain.NewTransportError(accountID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, metadomain.NewTransportError(accountID, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := metadomain.NewAPIErrorFromBody(accountID, resp.StatusCode, body)
		if apiErr.IsRateLimited() {
			logrus.WithField("account_id", accountID).Warn("Limite de requisições da API do Meta atingido")
		}
		return nil, apiErr
	}

	var response metadomain.ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, metadomain.NewTransportError(accountID, err)
	}

	return &response, nil
}
