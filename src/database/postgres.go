package database

import (
	"context"
	"fmt"

	"agency/src/config"
	aws_handler "agency/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	sqlCfg := cfg.Databases.SQL

	password := sqlCfg.Password
	if sqlCfg.PasswordSecretID != "" {
		awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to init AWS session: %w", err)
		}
		password, err = awsHandler.SecretManager.GetSecretValue(sqlCfg.PasswordSecretID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch db password secret: %w", err)
		}
	}

	dsn := sqlCfg.ConnectionString
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			sqlCfg.Host,
			sqlCfg.Username,
			password,
			sqlCfg.Database,
			sqlCfg.Port)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
