package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"business_manager/internal/domain/entities"
	"business_manager/internal/domain/pricing"
)

var (
	mutedColor     = &props.Color{Red: 80, Green: 80, Blue: 80}
	headerBg       = &props.Color{Red: 33, Green: 37, Blue: 41}
	headerFg       = &props.Color{Red: 255, Green: 255, Blue: 255}
	itemColumnSize = []int{5, 1, 2, 2, 2}
	listColumnSize = []int{2, 4, 2, 2, 2}
)

func newPDF() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()
	return maroto.New(cfg)
}

func writeDocumentPDF(company string, d entities.Document) ([]byte, error) {
	m := newPDF()

	addCompanyHeader(m, company, kindLabel(d.Kind))
	addDocumentMeta(m, d)
	addCustomerBlock(m, d.Customer)

	if d.ProposalLetter != "" {
		m.AddRows(row.New(4))
		addParagraph(m, d.ProposalLetter)
	}
	m.AddRows(row.New(4))

	totals := d.Totals()
	if d.Simplified {
		addSimplifiedSummary(m, d, totals)
	} else {
		addItemSection(m, "Parts", d.Items, pricing.KindPart)
		addItemSection(m, "Labor", d.Items, pricing.KindLabor)
	}

	totals.GrandTotal = d.TotalAmount
	addTotals(m, totals)

	if d.Notes != "" {
		m.AddRows(row.New(4))
		addLabeledParagraph(m, "Notes", d.Notes)
	}

	return generatePDF(m)
}

func writeListPDF(company string, kind entities.DocumentKind, docs []entities.Document) ([]byte, error) {
	m := newPDF()

	addCompanyHeader(m, company, kindLabel(kind)+"s")
	m.AddRows(row.New(4))
	addHeaderRow(m, listHeader, listColumnSize)
	for _, d := range docs {
		addBodyRow(m, listRow(d), listColumnSize)
	}
	return generatePDF(m)
}

func generatePDF(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addCompanyHeader(m core.Maroto, company, title string) {
	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New(company, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
			),
			col.New(4).Add(
				text.New(title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right}),
			),
		),
	)
}

func addDocumentMeta(m core.Maroto, d entities.Document) {
	meta := props.Text{Size: 9, Align: align.Right, Color: mutedColor}
	m.AddRows(row.New(6).Add(
		col.New(6).Add(text.New(d.Title, props.Text{Size: 10, Align: align.Left})),
		col.New(6).Add(text.New(fmt.Sprintf("No. %s", d.Number), meta)),
	))
	m.AddRows(row.New(5).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Date: %s", formatDate(d.Date)), meta)),
	))
	switch {
	case d.Kind == entities.DocumentKindInvoice && !d.DueDate.IsZero():
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Due: %s", formatDate(d.DueDate)), meta)),
		))
	case !d.ValidUntil.IsZero():
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Valid until: %s", formatDate(d.ValidUntil)), meta)),
		))
	}
	m.AddRows(row.New(4))
}

func addCustomerBlock(m core.Maroto, c entities.Customer) {
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New("Bill to", props.Text{Size: 9, Style: fontstyle.Bold})),
	))
	for _, line := range []string{c.Name, c.Address, c.Email, c.Phone} {
		if line == "" {
			continue
		}
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(line, props.Text{Size: 9})),
		))
	}
}

func addParagraph(m core.Maroto, body string) {
	m.AddRows(row.New().Add(
		col.New(12).Add(text.New(body, props.Text{Size: 9, Align: align.Left})),
	))
}

func addLabeledParagraph(m core.Maroto, label, body string) {
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold})),
	))
	addParagraph(m, body)
}

func addItemSection(m core.Maroto, title string, items []entities.DocumentItem, kind pricing.Kind) {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		if it.Kind() == kind {
			rows = append(rows, itemRow(it))
		}
	}
	if len(rows) == 0 {
		return
	}
	m.AddRows(row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold})),
	))
	addHeaderRow(m, itemHeader, itemColumnSize)
	for _, r := range rows {
		addBodyRow(m, r, itemColumnSize)
	}
	m.AddRows(row.New(4))
}

// addSimplifiedSummary prints one line per kind instead of the item tables.
func addSimplifiedSummary(m core.Maroto, d entities.Document, totals pricing.Totals) {
	summary := []int{8, 4}
	addHeaderRow(m, []string{"Description", "Amount"}, summary)
	label := d.Title
	if label == "" {
		label = "Parts and materials"
	}
	if totals.Parts.IsPositive() {
		addBodyRow(m, []string{label, pricing.FormatUSD(totals.Parts)}, summary)
	}
	if totals.Labor.IsPositive() {
		addBodyRow(m, []string{"Labor", pricing.FormatUSD(totals.Labor)}, summary)
	}
	m.AddRows(row.New(4))
}

func addTotals(m core.Maroto, totals pricing.Totals) {
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}
	lines := [][2]string{
		{"Parts", pricing.FormatUSD(totals.Parts)},
		{"Labor", pricing.FormatUSD(totals.Labor)},
		{"Total", pricing.FormatUSD(totals.GrandTotal)},
	}
	for _, l := range lines {
		m.AddRows(row.New(6).Add(
			col.New(9).Add(text.New(l[0], label)),
			col.New(3).Add(text.New(l[1], value)),
		))
	}
}

func addHeaderRow(m core.Maroto, cells []string, sizes []int) {
	style := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: headerFg}
	cell := props.Cell{BackgroundColor: headerBg}
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, style)).WithStyle(&cell))
	}
	m.AddRows(row.New(8).Add(cols...))
}

func addBodyRow(m core.Maroto, cells []string, sizes []int) {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(c, props.Text{Size: 8, Align: a, Top: 1})))
	}
	m.AddRows(row.New(7).Add(cols...))
}
