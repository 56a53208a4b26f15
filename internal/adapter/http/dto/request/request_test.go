package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestRawNumber_UnmarshalJSON(t *testing.T) {
	var body struct {
		A RawNumber `json:"a"`
		B RawNumber `json:"b"`
		C RawNumber `json:"c"`
		D RawNumber `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":12.50,"b":" 3 ","c":null,"d":"abc"}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.A != "12.50" {
		t.Fatalf("expected 12.50, got %q", body.A)
	}
	if body.B != "3" {
		t.Fatalf("expected 3, got %q", body.B)
	}
	if body.C != "" {
		t.Fatalf("expected empty, got %q", body.C)
	}
	if body.D != "abc" {
		t.Fatalf("non-numeric text must be kept for the use case to reject, got %q", body.D)
	}

	if err := json.Unmarshal([]byte(`{"a":true}`), &body); err == nil {
		t.Fatalf("expected error for boolean")
	}
}

func TestPartRequest_ToEntity(t *testing.T) {
	p, err := PartRequest{Name: " Pad ", Brand: "Bosch", Price: "49.99"}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Pad" || p.Price.String() != "49.99" {
		t.Fatalf("unexpected part: %+v", p)
	}

	for _, price := range []RawNumber{"cheap", "1e20000000", "1e-20000000"} {
		_, err = PartRequest{Name: "Pad", Price: price}.ToEntity()
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%s: expected ErrInvalidAmount, got %v", price, err)
		}
	}
}

func TestLaborRateRequest_ToEntity(t *testing.T) {
	l, err := LaborRateRequest{Name: "Mechanic", HourlyRate: "66.67"}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.HourlyRate.String() != "66.67" {
		t.Fatalf("unexpected rate: %s", l.HourlyRate)
	}
}

func TestDocumentHeaderRequest_ToHeader(t *testing.T) {
	h, err := DocumentHeaderRequest{
		Customer:   CustomerRequest{Name: " Acme "},
		Date:       "2026-03-14",
		ValidUntil: "2026-04-13T00:00:00Z",
	}.ToHeader()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Customer.Name != "Acme" {
		t.Fatalf("unexpected customer: %+v", h.Customer)
	}
	if !h.Date.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", h.Date)
	}
	if !h.DueDate.IsZero() {
		t.Fatalf("expected zero due date, got %v", h.DueDate)
	}

	_, err = DocumentHeaderRequest{Date: "14/03/2026"}.ToHeader()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateDocumentRequest_ToPayload(t *testing.T) {
	r := UpdateDocumentRequest{
		MarkupPercent: "10",
		Items: []DocumentItemRequest{
			{ID: "i1", Description: "Pad", Type: "item", Quantity: "2", UnitPrice: "55"},
			{Description: "Work", Type: "labor", Quantity: "1.5", UnitPrice: "40"},
			{Description: "Legacy", Quantity: "1", UnitPrice: "5"},
		},
	}
	p, err := r.ToPayload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 3 || p.MarkupPercent.String() != "10" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if p.Items[1].Type != "labor" || p.Items[2].Type != "item" {
		t.Fatalf("unexpected item types: %+v", p.Items)
	}

	r.Items[0].Quantity = "two"
	if _, err := r.ToPayload(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestConvertQuoteRequest_MarkupPercent(t *testing.T) {
	m, err := ConvertQuoteRequest{}.MarkupPercent()
	if err != nil || m != nil {
		t.Fatalf("expected nil markup, got %v %v", m, err)
	}

	v := RawNumber("15")
	m, err = ConvertQuoteRequest{Markup: &v}.MarkupPercent()
	if err != nil || m == nil || m.String() != "15" {
		t.Fatalf("expected 15, got %v %v", m, err)
	}

	bad := RawNumber("x")
	if _, err := (ConvertQuoteRequest{Markup: &bad}).MarkupPercent(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCustomerProfileRequest_ToEntity(t *testing.T) {
	c := CustomerProfileRequest{Name: " Acme ", Email: " ops@acme.test ", Phone: " 555 ", Address: " 1 Main St "}.ToEntity()
	if c.Name != "Acme" || c.Email != "ops@acme.test" || c.Phone != "555" || c.Address != "1 Main St" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestReportQuery_ToParams(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	period, ref, err := ReportQuery{}.ToParams(now)
	if err != nil || period != "weekly" || !ref.Equal(now) {
		t.Fatalf("unexpected defaults: %s %s %v", period, ref, err)
	}

	period, ref, err = ReportQuery{Period: "Monthly", Date: "2026-02-10"}.ToParams(now)
	if err != nil || period != "monthly" || !ref.Equal(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected params: %s %s %v", period, ref, err)
	}

	if _, _, err := (ReportQuery{Date: "10/02/2026"}).ToParams(now); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
