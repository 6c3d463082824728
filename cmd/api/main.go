package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/config"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	appHTTP "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/handler/http"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/database"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/repository/postgresql"
	contributionService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/contribution"
	indicatorsService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/indicators"
	payrollService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/payroll"
	settlementService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/settlement"
	taxService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/tax"
	vacationService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "payroll-core"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		logger.Error("database connection failed", slog.Any("error", err))
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	indicatorsRepo := postgresql.NewIndicatorsRepository(db)
	vacationPeriodRepo := postgresql.NewVacationPeriodRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)

	indicatorProvider := indicatorsService.NewCachedProvider(indicatorsRepo, logger)
	contributionResolver := contributionService.NewResolver(logger)
	taxResolver := taxService.NewResolver()
	payrollCalculator := payrollService.NewCalculator(indicatorProvider, contributionResolver, taxResolver, logger)

	accrualEngine := vacationService.NewAccrualEngine(db, vacationPeriodRepo, logger)
	allocator := vacationService.NewAllocator(db, vacationPeriodRepo, logger)

	causeRegistry := settlement.NewCauseRegistry()
	settlementCalculator := settlementService.NewCalculator(causeRegistry, logger)
	settlementSvc := settlementService.NewService(db, settlementRepo, settlementCalculator, causeRegistry, logger)

	payrollHandler := appHTTP.NewPayrollHandler(payrollCalculator)
	vacationHandler := appHTTP.NewVacationHandler(accrualEngine, allocator, employeeRepo)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)
	indicatorsHandler := appHTTP.NewIndicatorsHandler(indicatorProvider, indicatorsRepo)

	router := appHTTP.NewRouter(
		payrollHandler,
		vacationHandler,
		settlementHandler,
		indicatorsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("server error", slog.Any("error", err))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
