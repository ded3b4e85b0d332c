package billing

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"encore.dev/rlog"
)

var paidPageTmpl = template.Must(template.New("paid").Parse(`<!DOCTYPE html>
<html>
<head><title>Invoice {{.InvoiceNumber}} paid</title></head>
<body>
<h1>Thank you!</h1>
<p>Invoice <strong>{{.InvoiceNumber}}</strong> has been marked as paid.</p>
<p>Amount settled: {{.TotalAmount}} {{.Currency}}</p>
</body>
</html>
`))

var paidErrorTmpl = template.Must(template.New("paid-error").Parse(`<!DOCTYPE html>
<html>
<head><title>Payment link invalid</title></head>
<body>
<h1>This payment link is no longer valid</h1>
<p>The link may have expired or already been used. Please contact us for a new one.</p>
</body>
</html>
`))

type paidPageData struct {
	InvoiceNumber string
	TotalAmount   string
	Currency      string
}

// MarkInvoicePaid is the landing page behind the emailed payment link. A
// valid token settles the invoice in full in one step; the token is consumed
// atomically, so a second click lands on the error page.
//
//encore:api public raw path=/invoices/:id/mark-paid method=GET
func (s *Service) MarkInvoicePaid(w http.ResponseWriter, req *http.Request) {
	id, err := invoiceIDFromMarkPaidPath(req.URL.Path)
	if err != nil {
		http.Error(w, "invalid invoice ID", http.StatusBadRequest)
		return
	}

	token := req.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	inv, err := s.business.ConsumePaymentToken(req.Context(), id, token)
	if err != nil {
		rlog.Info("mark-paid link rejected", "invoice_id", id, "error", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		if tmplErr := paidErrorTmpl.Execute(w, nil); tmplErr != nil {
			rlog.Error("failed to render payment error page", "error", tmplErr)
		}
		return
	}

	s.signalInvoiceSettled(inv)

	rlog.Info("invoice settled via payment link", "invoice_id", inv.ID, "invoice_number", inv.InvoiceNumber)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := paidPageData{
		InvoiceNumber: inv.InvoiceNumber,
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		Currency:      inv.Currency,
	}
	if tmplErr := paidPageTmpl.Execute(w, data); tmplErr != nil {
		rlog.Error("failed to render payment confirmation page", "error", tmplErr)
	}
}

// invoiceIDFromMarkPaidPath pulls the invoice ID out of
// /invoices/{id}/mark-paid; raw endpoints parse their own path.
func invoiceIDFromMarkPaidPath(path string) (int64, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "invoices" || parts[2] != "mark-paid" {
		return 0, strconv.ErrSyntax
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
