package main

import (
	"io"
	"text/tabwriter"

	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
)

func printMonthly(w io.Writer, p *message.Printer, m *report.MonthlyReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "%s %d\n", m.Month, m.Year)
	p.Fprintf(tw, "Rental income\t%.2f\n", money.Float(m.TotalIncome))
	p.Fprintf(tw, "Expenses\t%.2f\n", money.Float(m.TotalExpenses))
	p.Fprintf(tw, "Net profit\t%.2f\n", money.Float(m.NetProfit))
	p.Fprintf(tw, "Occupancy\t%.2f%% (%d of %d)\n", m.OccupancyRate, m.OccupiedApartments, m.TotalApartments)

	return tw.Flush()
}

func printYearly(w io.Writer, p *message.Printer, y *report.YearlyReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "Month\tIncome\tExpenses\tNet\tOccupancy\t\n")

	for _, m := range y.Months {
		p.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f%%\t\n",
			m.Month, money.Float(m.TotalIncome), money.Float(m.TotalExpenses), money.Float(m.NetProfit), m.OccupancyRate)
	}

	p.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f%%\t\n",
		y.Year, money.Float(y.TotalIncome), money.Float(y.TotalExpenses), money.Float(y.NetProfit), y.AverageOccupancyRate)

	return tw.Flush()
}

func printDashboard(w io.Writer, p *message.Printer, d *report.Dashboard) error {
	if err := printMonthly(w, p, &d.CurrentMonth); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "\nApartments\t%d\n", d.TotalApartments)
	p.Fprintf(tw, "Tenants\t%d\n", d.TotalTenants)
	p.Fprintf(tw, "Overdue payments\t%d\n", d.OverdueCount)

	for _, pm := range d.OverduePayments {
		p.Fprintf(tw, "  due %s\t%.2f\t%s\n", pm.DueDate.Format("2006-01-02"), money.Float(pm.Amount), pm.Status)
	}

	p.Fprintf(tw, "Recent expenses\t%d\n", len(d.RecentExpenses))

	for _, e := range d.RecentExpenses {
		p.Fprintf(tw, "  %s\t%.2f\t%s: %s\n", e.Date.Format("2006-01-02"), money.Float(e.Amount), e.Type, e.Description)
	}

	return tw.Flush()
}
