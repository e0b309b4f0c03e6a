package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-spend-sync/internal/config"
)

func newTestClient(serverURL string) *MetaClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.AccessToken = "test-token"

	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{},
	}
}

func testWindow() (time.Time, time.Time) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return since, until
}

func TestGetAccountSpendInsights_PaginaUnica(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/act_111/insights", r.URL.Path)
		assert.Equal(t, "account", r.URL.Query().Get("level"))
		assert.Equal(t, "1", r.URL.Query().Get("time_increment"))
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-02"}`, r.URL.Query().Get("time_range"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"account_id": "111", "spend": "10.50", "impressions": "1000", "clicks": "20", "date_start": "2024-01-01", "date_stop": "2024-01-01"},
				{"account_id": "111", "spend": "20.00", "impressions": "2000", "clicks": "40", "date_start": "2024-01-02", "date_stop": "2024-01-02"}
			],
			"paging": {}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	since, until := testWindow()

	rows, err := client.GetAccountSpendInsights("111", since, until)

	require.NoError(t, err)
	assert.Equal(t, 1, requests, "sem cursor de continuação deve haver exatamente uma requisição")
	require.Len(t, rows, 2)
	assert.Equal(t, "10.50", rows[0].Spend)
	assert.Equal(t, "2024-01-01", rows[0].DateStart)
	assert.Equal(t, "20.00", rows[1].Spend)
}

func TestGetAccountSpendInsights_SegueTodasAsPaginas(t *testing.T) {
	const totalPages = 3
	var server *httptest.Server

	mux := http.NewServeMux()
	mux.HandleFunc("/act_111/insights", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"data": [{"account_id": "111", "spend": "1", "date_start": "2024-01-01", "date_stop": "2024-01-01"}],
			"paging": {"next": "%s/page/2"}
		}`, server.URL)
	})
	mux.HandleFunc("/page/", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Path[len("/page/"):]

		// O cursor é autossuficiente: a requisição de continuação não pode
		// reanexar os parâmetros da query original
		assert.Empty(t, r.URL.Query().Get("access_token"))
		assert.Empty(t, r.URL.Query().Get("fields"))

		if page == fmt.Sprint(totalPages) {
			fmt.Fprintf(w, `{
				"data": [{"account_id": "111", "spend": "%s", "date_start": "2024-01-0%s", "date_stop": "2024-01-0%s"}],
				"paging": {}
			}`, page, page, page)
			return
		}

		fmt.Fprintf(w, `{
			"data": [{"account_id": "111", "spend": "%s", "date_start": "2024-01-0%s", "date_stop": "2024-01-0%s"}],
			"paging": {"next": "%s/page/3"}
		}`, page, page, page, server.URL)
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server.URL)
	since, until := testWindow()

	rows, err := client.GetAccountSpendInsights("111", since, until)

	require.NoError(t, err)
	require.Len(t, rows, totalPages)

	// As linhas preservam a ordem de chegada através das páginas
	assert.Equal(t, "1", rows[0].Spend)
	assert.Equal(t, "2", rows[1].Spend)
	assert.Equal(t, "3", rows[2].Spend)
}

func TestGetAccountSpendInsights_ResultadoVazio(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"data": [], "paging": {}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	since, until := testWindow()

	rows, err := client.GetAccountSpendInsights("111", since, until)

	require.NoError(t, err)
	assert.Empty(t, rows, "resultado vazio é válido, não é erro")
	assert.Equal(t, 1, requests)
}

func TestGetAccountSpendInsights_JanelaDeUmDia(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-01"}`, r.URL.Query().Get("time_range"))
		fmt.Fprint(w, `{"data": [{"account_id": "111", "spend": "5", "date_start": "2024-01-01", "date_stop": "2024-01-01"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows, err := client.GetAccountSpendInsights("111", day, day)

	require.NoError(t, err)
	assert.Equal(t, 1, requests, "janela since=until ainda emite exatamente uma requisição")
	assert.Len(t, rows, 1)
}

func TestGetAccountSpendInsights_ErroDaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{
			"error": {
				"message": "Unsupported get request",
				"type": "GraphMethodException",
				"code": 100,
				"fbtrace_id": "AbCdEf"
			}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	since, until := testWindow()

	rows, err := client.GetAccountSpendInsights("999", since, until)

	require.Error(t, err)
	assert.Nil(t, rows)

	apiErr, ok := err.(*metadomain.APIError)
	require.True(t, ok, "falha da API deve virar *metadomain.APIError")
	assert.Equal(t, "999", apiErr.AccountID)
	assert.Equal(t, 100, apiErr.Code)
	assert.Equal(t, "GraphMethodException", apiErr.Type)
	assert.Equal(t, "Unsupported get request", apiErr.Message)
}

func TestGetAccountSpendInsights_ErroSemEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "gateway timeout")
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	since, until := testWindow()

	_, err := client.GetAccountSpendInsights("111", since, until)

	require.Error(t, err)
	apiErr, ok := err.(*metadomain.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestGetAccountSpendInsights_ErroDeTransporte(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // derruba o servidor antes da requisição

	client := newTestClient(server.URL)
	since, until := testWindow()

	_, err := client.GetAccountSpendInsights("111", since, until)

	require.Error(t, err)
	apiErr, ok := err.(*metadomain.APIError)
	require.True(t, ok, "falha de transporte também deve virar *metadomain.APIError")
	assert.Equal(t, "111", apiErr.AccountID)
	assert.Zero(t, apiErr.Code)
}
