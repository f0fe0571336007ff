package config

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs so
// packages and tests can log unconditionally.
var Logger = zap.NewNop()

// InitLogger builds a JSON production logger when APP_ENV=production and a
// human readable development logger otherwise.
func InitLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Logger = l
	zap.ReplaceGlobals(l)
	return nil
}

// SyncLogger flushes buffered entries; call it before exit.
func SyncLogger() {
	_ = Logger.Sync()
}
