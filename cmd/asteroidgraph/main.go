// asteroidgraph — диаграмма распределения астероидов по большой полуоси
// и эксцентриситету по каталогу MPCORB.DAT.
//
// Использование:
//
//	asteroidgraph [--json] <command> [flags]
//
// Команды:
//
//	download  Скачать MPCORB.DAT
//	plot      Нарисовать диаграмму в PNG/SVG
//	stats     Сводка по таблице
//	serve     Интерактивный viewer со слайдерами
//	import    Сохранить таблицу в PostgreSQL
//	batches   Список импортов
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/asteroidgraph/internal/cli"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(logger, version)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.NewOutput(false).Error(err.Error())
		cancel()
		os.Exit(1)
	}
}
