package metadomain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é a falha tipada de uma busca de insights para uma conta.
// Cobre tanto erros de transporte quanto erros devolvidos pela própria API
// (rate limit, conta inválida, token expirado).
type APIError struct {
	AccountID  string
	StatusCode int
	Code       int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 || e.Type != "" {
		return fmt.Sprintf("meta api: conta %s: %s (code=%d type=%s)", e.AccountID, e.Message, e.Code, e.Type)
	}
	return fmt.Sprintf("meta api: conta %s: %s", e.AccountID, e.Message)
}

// NewTransportError cria um APIError a partir de uma falha de transporte
func NewTransportError(accountID string, err error) *APIError {
	return &APIError{
		AccountID: accountID,
		Message:   err.Error(),
	}
}

// NewAPIErrorFromBody cria um APIError a partir de uma resposta não-2xx,
// extraindo código e mensagem quando o corpo expõe o envelope de erro do Meta
func NewAPIErrorFromBody(accountID string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		AccountID:  accountID,
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err == nil && response.Error.Message != "" {
		apiErr.Code = response.Error.Code
		apiErr.Type = response.Error.Type
		apiErr.Message = response.Error.Message
	}

	return apiErr
}

// IsRateLimited verifica se o erro é de limite de requisições da API.
// O código 17 representa "user request limit reached" e o 4 "application request limit reached".
func (e *APIError) IsRateLimited() bool {
	return e.Code == 4 || e.Code == 17 || e.StatusCode == http.StatusTooManyRequests
}
