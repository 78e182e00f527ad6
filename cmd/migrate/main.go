package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"coloring-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies pending files from the migrations directory with the atlas CLI.
// The atlas binary must be on PATH (or passed with -atlas).
func main() {
	var (
		dir     = flag.String("dir", "migrations", "migration directory")
		atlas   = flag.String("atlas", "atlas", "atlas executable")
		dryRun  = flag.Bool("dry-run", false, "print pending files without applying them")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	if cfg.DB.IsMemory() {
		logger.Info("DB_DRIVER=memory のためマイグレーションは不要です")
		return
	}

	client, err := atlasexec.NewClient(".", *atlas)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション実行完了", "file", f.Name, "version", f.Version)
	}
	logger.Info("マイグレーションが完了しました",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", *dryRun)
}
