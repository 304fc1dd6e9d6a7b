package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/internet-of-plants/iop/pkg/util"
)

const (
	keyToken        = "auth_token"
	keyWifiSSID     = "wifi_ssid"
	keyWifiPassword = "wifi_password"

	createTableSQL = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorageWithConfig(config util.SQLiteDatabaseConfig) (*SQLiteStorage, error) {
	db, err := util.NewSQLiteDB(config)
	if err != nil {
		return nil, err
	}

	s, err := NewSQLiteStorage(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQLiteStorage(db *sql.DB) (*SQLiteStorage, error) {
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) Token(ctx context.Context) (model.AuthToken, bool, error) {
	raw, found, err := s.get(ctx, s.db, keyToken)
	if err != nil || !found {
		return model.AuthToken{}, false, err
	}

	token, err := model.NewAuthToken(raw)
	if err != nil {
		return model.AuthToken{}, false, fmt.Errorf("%v: %w", err, model.ErrCorruptedToken)
	}
	return token, true, nil
}

func (s *SQLiteStorage) SetToken(ctx context.Context, token model.AuthToken) error {
	return s.set(ctx, s.db, keyToken, token.Bytes())
}

func (s *SQLiteStorage) RemoveToken(ctx context.Context) error {
	return s.remove(ctx, s.db, keyToken)
}

func (s *SQLiteStorage) WifiCredentials(ctx context.Context) (model.WifiCredentials, bool, error) {
	ssid, found, err := s.get(ctx, s.db, keyWifiSSID)
	if err != nil || !found {
		return model.WifiCredentials{}, false, err
	}
	password, _, err := s.get(ctx, s.db, keyWifiPassword)
	if err != nil {
		return model.WifiCredentials{}, false, err
	}

	credentials := model.WifiCredentials{}
	if credentials.SSID, err = model.NewNetworkName(ssid); err != nil {
		return model.WifiCredentials{}, false, fmt.Errorf("ssid: %v: %w", err, model.ErrCorruptedWifiCredentials)
	}
	if credentials.Password, err = model.NewNetworkPassword(password); err != nil {
		return model.WifiCredentials{}, false, fmt.Errorf("password: %v: %w", err, model.ErrCorruptedWifiCredentials)
	}
	return credentials, true, nil
}

func (s *SQLiteStorage) SetWifiCredentials(ctx context.Context, credentials model.WifiCredentials) error {
	if err := model.ValidateWifiCredentials(credentials); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.set(ctx, tx, keyWifiSSID, credentials.SSID.Bytes()); err != nil {
			return err
		}
		return s.set(ctx, tx, keyWifiPassword, credentials.Password.Bytes())
	})
}

func (s *SQLiteStorage) RemoveWifiCredentials(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.remove(ctx, tx, keyWifiSSID); err != nil {
			return err
		}
		return s.remove(ctx, tx, keyWifiPassword)
	})
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteStorage) withTx(ctx context.Context, f func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %v%w", err, model.ErrStorageError)
	}
	defer func() { _ = tx.Rollback() }()

	if err := f(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %v%w", err, model.ErrStorageError)
	}
	return nil
}

func (s *SQLiteStorage) get(ctx context.Context, q execQuerier, key string) ([]byte, bool, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %v%w", key, err, model.ErrStorageError)
	}
	return value, true, nil
}

func (s *SQLiteStorage) set(ctx context.Context, q execQuerier, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := q.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store %s: %v%w", key, err, model.ErrStorageError)
	}
	return nil
}

func (s *SQLiteStorage) remove(ctx context.Context, q execQuerier, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %v%w", key, err, model.ErrStorageError)
	}
	return nil
}
