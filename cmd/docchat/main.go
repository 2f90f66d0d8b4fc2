package main

import (
	"fmt"
	"os"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/config/file"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/gateway"
	filestore "github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/file"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/memory"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/cli"
	"github.com/docchat-labs/docchat-cli/internal/config"
	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driven"
	"github.com/docchat-labs/docchat-cli/internal/core/services"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// version is injected at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file first so environment variables can override it
	configStore, err := file.NewConfigStore(os.Getenv("DOCCHAT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	cfg, err := config.Load(configStore)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.SetVerbose(cfg.Verbose)

	client := gateway.NewClient(gateway.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
	})

	recordStore, err := filestore.NewRecordStore(cfg.ConfigDir)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}

	// A sealed data directory only loses history persistence, not the
	// session: fall back to an in-memory history store.
	var historyStore driven.HistoryStore
	if store, err := sqlite.NewHistoryStore(cfg.ConfigDir); err != nil {
		logger.Warn("Chat history will not persist: %v", err)
		historyStore = memory.NewHistoryStore()
	} else {
		historyStore = store
		defer store.Close()
	}

	recordService := services.NewRecordService(recordStore)
	chatService := services.NewChatService(client, recordService, historyStore)
	uploadService := services.NewUploadService(client, recordService, func(*domain.DocumentRecord) {
		chatService.Reset()
	})

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Record:  recordService,
		Chat:    chatService,
		Upload:  uploadService,
		History: chatService,
		Health:  client,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		RecordService:  recordService,
		ChatService:    chatService,
		UploadService:  uploadService,
		HistoryService: chatService,
	})

	return cli.Execute()
}
