package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"dinner-club/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		logger.Info("マイグレーション適用", "file", f.Name, "version", f.Version)
	}
	logger.Info("マイグレーション完了", "current", res.Current, "target", res.Target, "applied", len(res.Applied), "dry_run", *dryRun)
}
