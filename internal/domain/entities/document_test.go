package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business_manager/internal/domain/pricing"
)

func TestDocumentKind_AllowsStatus(t *testing.T) {
	assert.True(t, DocumentKindQuote.AllowsStatus(DocumentStatusAccepted))
	assert.True(t, DocumentKindProposal.AllowsStatus(DocumentStatusExpired))
	assert.False(t, DocumentKindQuote.AllowsStatus(DocumentStatusPaid))
	assert.True(t, DocumentKindInvoice.AllowsStatus(DocumentStatusOverdue))
	assert.False(t, DocumentKindInvoice.AllowsStatus(DocumentStatusAccepted))
	assert.False(t, DocumentKind("memo").AllowsStatus(DocumentStatusPending))
	assert.False(t, DocumentKind("memo").Valid())
	assert.Equal(t, "I", DocumentKindInvoice.NumberPrefix())
	assert.Equal(t, "P", DocumentKindProposal.NumberPrefix())
	assert.Equal(t, "Q", DocumentKindQuote.NumberPrefix())
}

func TestDocument_PayloadRoundTrip(t *testing.T) {
	a := pricing.NewAssembler(pricing.WithMarkup(decimal.NewFromInt(10)))
	a.AddPart(pricing.PartEntry{Name: "Filter", UnitPrice: decimal.NewFromInt(100)}, decimal.NewFromInt(1))
	a.AddLabor(pricing.LaborEntry{Name: "Install", HourlyRate: decimal.NewFromInt(50)}, decimal.NewFromInt(2))

	var d Document
	d.ApplyPayload(a.Payload())
	require.Len(t, d.Items, 2)
	assert.Equal(t, pricing.KindPart, d.Items[0].Kind())
	assert.Equal(t, pricing.KindLabor, d.Items[1].Kind())
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(210)))

	src := d.PricingSource()
	assert.True(t, src.MarkupPercent.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, d.Items[0].ID, src.Items[0].ID)

	totals := d.Totals()
	assert.True(t, totals.Parts.Equal(decimal.NewFromInt(110)))
	assert.True(t, totals.Labor.Equal(decimal.NewFromInt(100)))
}

func TestParseExportFormat(t *testing.T) {
	f, ok := ParseExportFormat("Excel")
	assert.True(t, ok)
	assert.Equal(t, ExportFormatXLSX, f)
	assert.Equal(t, "application/pdf", ExportFormatPDF.ContentType())

	_, ok = ParseExportFormat("docx")
	assert.False(t, ok)
}

func TestPaymentStatusFromProvider(t *testing.T) {
	assert.Equal(t, PaymentStatusApproved, PaymentStatusFromProvider("approved"))
	assert.Equal(t, PaymentStatusDenied, PaymentStatusFromProvider("rejected"))
	assert.Equal(t, PaymentStatusPending, PaymentStatusFromProvider("in_process"))
}
