package infrastructure

import (
	"bufio"
	"fmt"
	"io"

	"disk-scheduling/internal/domain"
	"disk-scheduling/pkg/scheduling"

	"go.uber.org/zap"
)

var _ domain.ReportWriter = (*ConsoleReportWriter)(nil)

type ConsoleReportWriter struct {
	logger    *zap.Logger
	out       io.Writer
	showStats bool
}

func NewConsoleReportWriter(logger *zap.Logger, out io.Writer, showStats bool) *ConsoleReportWriter {
	return &ConsoleReportWriter{logger: logger, out: out, showStats: showStats}
}

func (w *ConsoleReportWriter) WriteSchedules(schedules []*domain.Schedule) error {
	writer := bufio.NewWriter(w.out)

	for _, s := range schedules {
		fmt.Fprintf(writer, "\n%s Disk Scheduling:\nOrder: %d", s.Algorithm, s.Head)
		for _, pos := range s.Order {
			fmt.Fprintf(writer, " -> %d", pos)
		}
		fmt.Fprintf(writer, "\nTotal Head Movement = %d\n", s.TotalMovement)

		if w.showStats {
			st := scheduling.SeekStatistics(s)
			fmt.Fprintf(writer, "Average Seek = %.2f (stddev %.2f, max %.0f)\n", st.Mean, st.StdDev, st.Max)
		}
	}

	if w.showStats {
		if best := scheduling.Best(schedules); best != nil {
			fmt.Fprintf(writer, "\nBest: %s (%d)\n", best.Algorithm, best.TotalMovement)
		}
	}

	if err := writer.Flush(); err != nil {
		w.logger.Error("Failed to write report", zap.Error(err))
		return err
	}
	return nil
}
