package repository

import "fmt"

// StoreWriteError é a falha tipada de uma gravação no banco de dados.
// O orquestrador a captura no limite por conta, sem abortar as demais.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("erro ao gravar no banco de dados: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
