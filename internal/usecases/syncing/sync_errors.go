package syncing

import (
	"errors"

	metadomain "github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/fb-spend-sync/infrastructure/repository"
)

// isRecoverableAccountError identifica as falhas tipadas que ficam contidas
// no limite por conta: erro da API do Meta ou erro de gravação no banco.
// Qualquer outro erro é tratado como defeito e aborta a rodada inteira.
func isRecoverableAccountError(err error) bool {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		return true
	}

	var storeErr *repository.StoreWriteError
	return errors.As(err, &storeErr)
}
