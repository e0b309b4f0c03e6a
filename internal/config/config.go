package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/fb-spend-sync/pkg/utils"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type Sync struct {
	AccountIDs            []string  `mapstructure:"account_ids"`
	Since                 string    `mapstructure:"sync_since"`
	Until                 string    `mapstructure:"sync_until"`
	Strict                bool      `mapstructure:"sync_strict"`
	MaxConcurrentAccounts int       `mapstructure:"sync_max_concurrent_accounts"`
	SinceDate             time.Time `mapstructure:"-"`
	UntilDate             time.Time `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_USER", "postgres")

	// Registrar as chaves obrigatórias (sem valor) para que o AutomaticEnv
	// as enxergue no Unmarshal mesmo sem arquivo .env
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("ACCOUNT_IDS", "")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	// Janela padrão: ontem até hoje (UTC). A sobreposição de um dia cobre
	// dados que o Meta reporta com atraso; o upsert torna a repetição segura.
	viper.SetDefault("SYNC_SINCE", "")
	viper.SetDefault("SYNC_UNTIL", "")
	viper.SetDefault("SYNC_STRICT", false)
	viper.SetDefault("SYNC_MAX_CONCURRENT_ACCOUNTS", 1)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	logEnvCheck(config)

	config.Sync.AccountIDs = normalizeAccountIDs(config.Sync.AccountIDs)

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.resolveSyncWindow(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate garante as variáveis obrigatórias antes de qualquer atividade de rede
func (c *Config) validate() error {
	if c.Database.URL == "" || c.Database.Password == "" {
		return errors.New("faltam DATABASE_URL / DATABASE_PASSWORD")
	}

	if c.Meta.AccessToken == "" {
		return errors.New("falta META_ACCESS_TOKEN")
	}

	if len(c.Sync.AccountIDs) == 0 {
		return errors.New("falta ACCOUNT_IDS (ex: 123,456)")
	}

	return nil
}

// resolveSyncWindow converte SYNC_SINCE/SYNC_UNTIL em datas concretas.
// Sem override, a janela é ontem..hoje em UTC.
func (c *Config) resolveSyncWindow() error {
	c.Sync.SinceDate = utils.YesterdayUTC()
	c.Sync.UntilDate = utils.TodayUTC()

	if c.Sync.Since != "" {
		since, err := utils.ParseDate(c.Sync.Since)
		if err != nil {
			return errors.Wrap(err, "SYNC_SINCE inválido")
		}
		c.Sync.SinceDate = *since
	}

	if c.Sync.Until != "" {
		until, err := utils.ParseDate(c.Sync.Until)
		if err != nil {
			return errors.Wrap(err, "SYNC_UNTIL inválido")
		}
		c.Sync.UntilDate = *until
	}

	if c.Sync.SinceDate.After(c.Sync.UntilDate) {
		return errors.Errorf(
			"janela de sincronização inválida: since (%s) posterior a until (%s)",
			c.Sync.SinceDate.Format(time.DateOnly),
			c.Sync.UntilDate.Format(time.DateOnly),
		)
	}

	return nil
}

// normalizeAccountIDs remove espaços e entradas vazias da lista de contas
func normalizeAccountIDs(ids []string) []string {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		normalized = append(normalized, id)
	}
	return normalized
}

// logEnvCheck registra a presença das variáveis obrigatórias, nunca seus valores
func logEnvCheck(c *Config) {
	logrus.WithFields(logrus.Fields{
		"DATABASE_URL":      c.Database.URL != "",
		"DATABASE_PASSWORD": c.Database.Password != "",
		"META_ACCESS_TOKEN": c.Meta.AccessToken != "",
		"META_VERSION":      c.Meta.Version,
		"ACCOUNT_IDS":       len(c.Sync.AccountIDs),
	}).Info("ENV CHECK")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
