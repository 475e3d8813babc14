package payrollquery

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PayslipRenderer draws a single-page A4 payslip in memory.
type PayslipRenderer struct {
	schoolName string
	currency   string
}

func NewPayslipRenderer(schoolName, currency string) *PayslipRenderer {
	return &PayslipRenderer{schoolName: schoolName, currency: currency}
}

func (r *PayslipRenderer) Render(v AdminPeriodView) ([]byte, error) {
	period := time.Date(v.Year, time.Month(v.Month), 1, 0, 0, 0, 0, time.UTC)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s", period.Format("January 2006")), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.schoolName)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip for %s", period.Format("January 2006")))
	pdf.Ln(12)

	pdf.Cell(0, 7, fmt.Sprintf("Staff: %s", v.StaffName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Email: %s", v.StaffEmail))
	pdf.Ln(6)
	if v.Bank != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Bank: %s, %s (%s)", v.Bank.BankName, v.Bank.Branch, v.Bank.AccountNumber))
		pdf.Ln(6)
	}
	if v.PaidAt != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Paid on: %s", *v.PaidAt))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	lines := []struct {
		label string
		value string
		bold  bool
	}{
		{"Base salary", v.BaseSalary, false},
		{"Bonus", v.Bonus, false},
		{"EPF (employee)", "-" + v.EPFEmployee, false},
		{"Leave deduction", "-" + v.LeaveDeduction, false},
		{"Net pay", v.Total, true},
		{"EPF (employer)", v.EPFEmployer, false},
		{"ETF (employer)", v.ETF, false},
	}
	for _, l := range lines {
		style := ""
		if l.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(90, 8, l.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%s %s", r.currency, l.value), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
