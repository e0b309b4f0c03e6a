package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fb-spend-sync/infrastructure/database/postgres"
	"github.com/vfg2006/fb-spend-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/fb-spend-sync/infrastructure/repository"
	"github.com/vfg2006/fb-spend-sync/internal/config"
	"github.com/vfg2006/fb-spend-sync/internal/usecases/syncing"
	"github.com/vfg2006/fb-spend-sync/pkg/log"
)

// Job de execução única: o agendador externo (cron da plataforma) invoca o
// binário a cada intervalo. O processo termina com código 0 depois de tentar
// todas as contas; só sai com código 1 se a configuração for inválida, se o
// modo estrito estiver ativo com alguma conta em falha, ou se um erro
// inesperado escapar do isolamento por conta.
func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, correlationID := log.WithCorrelationID(ctx)
	logrus.WithField("correlation_id", correlationID).Info("Iniciando job de sincronização de gastos do Facebook")

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	spendRepo := repository.NewFacebookSpendRepository(pgConn)
	metaClient := metaclient.NewClient(cfg)

	syncService := syncing.NewService(cfg, metaClient, spendRepo)

	summary, err := syncService.SyncAll(ctx)
	if err != nil {
		pgConn.Close()
		logrus.WithError(err).Fatal("Sincronização encerrada com erro")
	}

	if failures := summary.Failures(); len(failures) > 0 {
		logrus.Warnf("Concluído com %d conta(s) em falha", len(failures))
		return
	}

	logrus.Info("Concluído.")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
