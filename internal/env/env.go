package env

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppConfig AppConfig
}

type AppConfig struct {
	Name          string
	Env           string
	Source        string
	Port          uint
	LogFormat     string
	LogLevel      string
	SentryDSN     string
	MetricsPrefix string

	JsonRpcURL   string
	RpcViaBridge bool

	NatsDefaultURL      string
	BridgeSubject       string
	BridgeEventsSubject string
	BridgeTimeout       time.Duration
}

const (
	defaultBridgeSubject       = `wallet.host`
	defaultBridgeEventsSubject = `wallet.events`
	defaultBridgeTimeout       = 30 * time.Second
)

var (
	cfg Config

	onceDefaultClient sync.Once
)

func Read(configPath string) (*Config, error) {
	var err error

	onceDefaultClient.Do(func() {
		viper.SetConfigType("env")

		if len(configPath) != 0 {
			viper.SetConfigFile(configPath)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigFile(".env")
		}

		viper.SetDefault("APP_NAME", "web3-provider")
		viper.SetDefault("ENV", "local")
		viper.SetDefault("PORT", 8080)
		viper.SetDefault("LOG_FORMAT", "text")
		viper.SetDefault("LOG_LEVEL", "INFO")
		viper.SetDefault("METRICS_PREFIX", "web3_provider")
		viper.SetDefault("BRIDGE_SUBJECT", defaultBridgeSubject)
		viper.SetDefault("BRIDGE_EVENTS_SUBJECT", defaultBridgeEventsSubject)
		viper.SetDefault("BRIDGE_TIMEOUT", defaultBridgeTimeout)

		viper.AutomaticEnv()
		if viperErr := viper.ReadInConfig(); viperErr != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(viperErr, &notFound) && !errors.Is(viperErr, fs.ErrNotExist) {
				err = viperErr
				return
			}
		}

		cfg = Config{
			AppConfig: AppConfig{
				Name:                viper.GetString("APP_NAME"),
				Env:                 viper.GetString("ENV"),
				Source:              viper.GetString("SOURCE"),
				Port:                viper.GetUint("PORT"),
				LogFormat:           viper.GetString("LOG_FORMAT"),
				LogLevel:            viper.GetString("LOG_LEVEL"),
				SentryDSN:           viper.GetString("SENTRY_DSN"),
				MetricsPrefix:       viper.GetString("METRICS_PREFIX"),
				JsonRpcURL:          viper.GetString("JSON_RPC_URL"),
				RpcViaBridge:        viper.GetBool("RPC_VIA_BRIDGE"),
				NatsDefaultURL:      viper.GetString("NATS_DEFAULT_URL"),
				BridgeSubject:       viper.GetString("BRIDGE_SUBJECT"),
				BridgeEventsSubject: viper.GetString("BRIDGE_EVENTS_SUBJECT"),
				BridgeTimeout:       viper.GetDuration("BRIDGE_TIMEOUT"),
			},
		}
	})

	return &cfg, err
}
