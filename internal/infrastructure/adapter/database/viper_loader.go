package database

import (
	"strconv"

	"github.com/tipstream/tip-ledger/internal/infrastructure/config"
)

// CreateConfigFromAppConfig builds a database Config from the loaded
// application configuration
func CreateConfigFromAppConfig(appConfig *config.Config) *Config {
	port, err := strconv.Atoi(appConfig.Database.Port)
	if err != nil || port <= 0 {
		port = 5432
	}

	retryDelaySeconds := int(appConfig.Database.RetryDelay.Seconds())
	if retryDelaySeconds <= 0 {
		retryDelaySeconds = 1
	}

	return &Config{
		Driver:          appConfig.Database.Driver,
		Host:            appConfig.Database.Host,
		Port:            port,
		Username:        appConfig.Database.Username,
		Password:        appConfig.Database.Password,
		Database:        appConfig.Database.Database,
		SSLMode:         appConfig.Database.SSLMode,
		MaxOpenConns:    appConfig.Database.MaxOpenConns,
		MaxIdleConns:    appConfig.Database.MaxIdleConns,
		ConnMaxLifetime: appConfig.Database.ConnMaxLifetime,
		ConnMaxIdleTime: appConfig.Database.ConnMaxIdleTime,
		QueryTimeout:    appConfig.Database.QueryTimeout,
		LogLevel:        appConfig.Logger.Level,
		RetryAttempts:   appConfig.Database.RetryAttempts,
		RetryDelay:      retryDelaySeconds,
	}
}
