package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"secure-notes/config"
	"secure-notes/db"
	"secure-notes/handlers"
	"secure-notes/logger"
	"secure-notes/store"
	"secure-notes/token"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.LogFile, cfg.IsProduction())
	defer zlog.Sync()

	conn, err := db.Connect(cfg.DSN)
	if err != nil {
		zlog.Fatal("db connection error", zap.Error(err))
	}
	defer conn.Close()

	tokens := token.NewService(cfg.SecretKey)
	h := &handlers.Handler{
		Users:  store.NewUserStore(conn),
		Notes:  store.NewNoteStore(conn),
		Tokens: tokens,
		DB:     conn,
		Cfg:    cfg,
		Log:    zlog,
	}

	r := newRouter(h, tokens, zlog, cfg.IsProduction())

	zlog.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
}
