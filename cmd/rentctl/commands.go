package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	aptStore "github.com/MrJamesThe3rd/rentroll/internal/apartment/store"
	"github.com/MrJamesThe3rd/rentroll/internal/config"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/rentroll/internal/expense/store"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/rentroll/internal/payment/store"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
	tenantStore "github.com/MrJamesThe3rd/rentroll/internal/tenant/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(cfg.Logger(os.Stderr))

	return cfg, nil
}

// openReports connects to the database and wires the reporting engine.
// The caller closes the returned db.
func openReports() (*report.Service, *sql.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, err
	}

	svc := report.NewService(
		apartment.NewService(aptStore.New(db)),
		tenant.NewService(tenantStore.New(db)),
		payment.NewService(paymentStore.New(db)),
		expense.NewService(expenseStore.New(db)),
	)

	return svc, db, nil
}

func printer(cmd *cobra.Command) (*message.Printer, error) {
	raw, err := cmd.Flags().GetString("lang")
	if err != nil {
		return nil, err
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", raw, err)
	}

	return message.NewPrinter(tag), nil
}

func intArg(args []string, i int, name string) (int, error) {
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, args[i])
	}

	return n, nil
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print financial reports",
	}

	cmd.AddCommand(monthlyCmd(), yearlyCmd())

	return cmd
}

func monthlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly <year> <month>",
		Short: "Print the report for one month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := intArg(args, 0, "year")
			if err != nil {
				return err
			}

			month, err := intArg(args, 1, "month")
			if err != nil {
				return err
			}

			p, err := printer(cmd)
			if err != nil {
				return err
			}

			svc, db, err := openReports()
			if err != nil {
				return err
			}
			defer db.Close()

			m, err := svc.Monthly(cmd.Context(), year, month)
			if err != nil {
				return err
			}

			return printMonthly(cmd.OutOrStdout(), p, m)
		},
	}
}

func yearlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yearly <year>",
		Short: "Print the report for a calendar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := intArg(args, 0, "year")
			if err != nil {
				return err
			}

			p, err := printer(cmd)
			if err != nil {
				return err
			}

			svc, db, err := openReports()
			if err != nil {
				return err
			}
			defer db.Close()

			y, err := svc.Yearly(cmd.Context(), year)
			if err != nil {
				return err
			}

			return printYearly(cmd.OutOrStdout(), p, y)
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print today's dashboard snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := printer(cmd)
			if err != nil {
				return err
			}

			svc, db, err := openReports()
			if err != nil {
				return err
			}
			defer db.Close()

			d, err := svc.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			return printDashboard(cmd.OutOrStdout(), p, d)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err := database.Migrate(cfg.ConnectionString()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}
}
