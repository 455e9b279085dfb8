package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Irex777/bolt-popcorn-pos/models"
)

// Layout constants. These are fixed page geometry, not derived from
// content: the body advances 10mm per sale line and breaks to a new page
// past 270mm on an A4 portrait page.
const (
	reportTitleY    = 20.0
	reportPeriodY   = 30.0
	reportTotalY    = 40.0
	reportBodyTopY  = 60.0
	reportResetY    = 20.0
	reportMaxY      = 270.0
	reportLineStep  = 10.0
	reportLeftX     = 20.0
	reportAmountX   = 120.0
	reportDateFmt   = "Jan 2, 2006"
	reportStampFmt  = "01/02/2006, 3:04 PM"
	reportTitleText = "Sales Report"
)

// ReportService renders a sales history window into a printable PDF.
type ReportService struct {
	formatter *CurrencyFormatter
	now       func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(formatter *CurrencyFormatter) *ReportService {
	return &ReportService{
		formatter: formatter,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used for PDF creation metadata, for tests.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Filename returns the artifact name for a period's report.
func Filename(period models.Period) string {
	return fmt.Sprintf("sales-report-%s.pdf", period)
}

// Render produces the report document for a resolved history window. The
// sales are printed in the order received (already newest first). Rendering
// reads nothing but its arguments and writes nothing back, so the same
// inputs always produce the same bytes.
func (s *ReportService) Render(sales []models.Sale, rng models.PeriodRange, total decimal.Decimal) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(s.now())
	pdf.SetModificationDate(s.now())
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 20)
	pdf.Text(reportLeftX, reportTitleY, reportTitleText)

	pdf.SetFontSize(12)
	pdf.Text(reportLeftX, reportPeriodY, fmt.Sprintf("Period: %s - %s",
		rng.Start.Format(reportDateFmt), rng.End.Format(reportDateFmt)))
	pdf.Text(reportLeftX, reportTotalY, "Total Sales: "+tr(s.formatter.Format(total)))

	pdf.SetFontSize(10)
	y := reportBodyTopY
	for _, sale := range sales {
		if y > reportMaxY {
			pdf.AddPage()
			y = reportResetY
		}
		pdf.Text(reportLeftX, y, sale.CreatedAt.Format(reportStampFmt))
		pdf.Text(reportAmountX, y, tr(s.formatter.Format(sale.Total)))
		y += reportLineStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
