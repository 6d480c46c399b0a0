package documents

import (
	"fmt"

	"github.com/flipSOsigma/catering-app/models"
)

const (
	letterheadName    = "Anisa Catering\nSnack & Kue Kering"
	letterheadAddress = "Jl. Cemara Raya No. 37 Banyumanik - Semarang\nTelp. (024) 76403307 & 08156693587"

	baseFontSize    = 11
	titleFontSize   = 14
	kitchenFontSize = 20

	// Surat dapur dicetak untuk jam persiapan, 3 jam sebelum acara.
	kitchenPrepOffsetHours = 3
)

// Assemble menyusun dokumen untuk satu varian cetak. Total yang tampil
// diambil langsung dari field turunan order; assembler tidak menghitung
// ulang apa pun supaya tidak mungkin beda dengan angka di layar.
func Assemble(o models.Order, v Variant) (Document, error) {
	switch v {
	case VariantInvoice:
		return assembleInvoice(o), nil
	case VariantDeliveryNote:
		return assembleDeliveryNote(o), nil
	case VariantKitchenSheet:
		return assembleKitchenSheet(o), nil
	default:
		return Document{}, fmt.Errorf("varian dokumen %q tidak dikenal", v)
	}
}

// FileName -> nama berkas unduhan, "Invoice - {acara} - Semarang, {tgl}.pdf".
func FileName(o models.Order, v Variant) string {
	label := map[Variant]string{
		VariantInvoice:      "Invoice",
		VariantDeliveryNote: "Surat Jalan",
		VariantKitchenSheet: "Surat Dapur",
	}[v]
	return fmt.Sprintf("%s - %s - %s.pdf", label, o.EventName, formatHeaderDate(o.CreatedAt.Format("2006-01-02")))
}

// includedSections memfilter nama section baku, urutan kanonik
// Buffet -> Menu Pondokan -> Dessert -> Akad. Section yang absen atau tanpa
// portion dilewati diam-diam; urutan internal sections order tidak dipakai.
func includedSections(o models.Order) []*models.Section {
	var out []*models.Section
	for _, name := range models.CanonicalSectionOrder {
		sec := o.SectionByName(name)
		if sec != nil && len(sec.Portions) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// headerBlocks -> kop surat plus tabel identitas pemesan 4 kolom yang sama
// untuk invoice dan surat jalan.
func headerBlocks(o models.Order) []Block {
	return []Block{
		TextBlock{Text: letterheadName, FontSize: 15, Bold: true, Centered: true},
		TextBlock{Text: letterheadAddress, FontSize: 10, Centered: true},
		RuleLine{},
		TableBlock{
			FontSize: baseFontSize,
			Rows: [][]string{
				{"Pemesan", ": " + o.Customer.Name, "Hari, Tgl", ": " + formatHeaderDate(o.Event.Date)},
				{"Alamat", ": " + o.Event.Location, "Gedung", ": " + o.Event.Building},
				{"No. Telp", ": " + o.Customer.Phone, "Jam", ": " + o.Event.Time},
				{"Email", ": " + o.Customer.Email, "Acara", ": " + string(o.Event.Category)},
			},
		},
		RuleLine{},
	}
}

func sectionNoteBlocks(note string, fontSize float64) []Block {
	if note == "" {
		note = "-"
	}
	return []Block{
		TextBlock{Text: "Catatan", Bold: true, FontSize: baseFontSize, Indent: true},
		TextBlock{Text: note, FontSize: fontSize, Indent: true},
	}
}

func orderNoteBlocks(note string) []Block {
	if note == "" {
		note = "-"
	}
	return []Block{
		TextBlock{Text: "Catatan Pesanan", Bold: true, FontSize: baseFontSize, Indent: true},
		TextBlock{Text: note, FontSize: baseFontSize, Indent: true},
	}
}

func assembleInvoice(o models.Order) Document {
	blocks := headerBlocks(o)

	// Baris undangan/estimasi tamu hanya untuk Wedding.
	if o.Event.Category == models.CategoryWedding {
		blocks = append(blocks,
			TableBlock{
				FontSize: baseFontSize,
				Rows: [][]string{
					{"Undangan", fmt.Sprintf(": %d", o.Invitation), "Estimasi Tamu", fmt.Sprintf(": %d", o.Visitor)},
				},
			},
			RuleLine{},
		)
	}

	for _, sec := range includedSections(o) {
		rows := make([][]string, 0, len(sec.Portions)+1)
		for i, p := range sec.Portions {
			rows = append(rows, []string{
				fmt.Sprintf("%d.", i+1),
				p.Name,
				p.Note,
				fmt.Sprintf("%d porsi", p.Count),
				formatCurrency(p.Price),
				formatCurrency(p.TotalPrice),
			})
		}
		rows = append(rows, []string{"", "", "", "", "Total", formatCurrency(sec.TotalPrice)})

		blocks = append(blocks, TextBlock{Text: sec.Name, FontSize: titleFontSize, Bold: true})
		blocks = append(blocks, TableBlock{
			Header:   []string{"", "Nama Menu", "Catatan menu", "porsi", "harga /porsi", "harga total"},
			Rows:     rows,
			FontSize: baseFontSize,
			Indent:   true,
		})
		blocks = append(blocks, sectionNoteBlocks(sec.Note, baseFontSize)...)
		blocks = append(blocks, RuleLine{})
	}

	blocks = append(blocks, orderNoteBlocks(o.Note)...)

	return Document{
		Title:       FileName(o, VariantInvoice),
		Orientation: OrientationPortrait,
		Blocks:      blocks,
	}
}

func assembleDeliveryNote(o models.Order) Document {
	blocks := headerBlocks(o)

	// Surat jalan: tanpa baris tamu dan tanpa kolom catatan menu.
	for _, sec := range includedSections(o) {
		rows := make([][]string, 0, len(sec.Portions)+1)
		for i, p := range sec.Portions {
			rows = append(rows, []string{
				fmt.Sprintf("%d.", i+1),
				p.Name,
				fmt.Sprintf("%d porsi", p.Count),
				formatCurrency(p.Price),
				formatCurrency(p.TotalPrice),
			})
		}
		rows = append(rows, []string{"", "", "", "Total", formatCurrency(sec.TotalPrice)})

		blocks = append(blocks, TextBlock{Text: sec.Name, FontSize: titleFontSize, Bold: true})
		blocks = append(blocks, TableBlock{
			Header:   []string{"", "Nama Menu", "porsi", "harga /porsi", "harga total"},
			Rows:     rows,
			FontSize: baseFontSize,
			Indent:   true,
		})
		blocks = append(blocks, sectionNoteBlocks(sec.Note, baseFontSize)...)
		blocks = append(blocks, RuleLine{})
	}

	blocks = append(blocks, orderNoteBlocks(o.Note)...)

	return Document{
		Title:       FileName(o, VariantDeliveryNote),
		Orientation: OrientationPortrait,
		Blocks:      blocks,
	}
}

func assembleKitchenSheet(o models.Order) Document {
	var blocks []Block

	// Satu halaman landscape per section, header pemesan diulang di tiap
	// halaman. Jam yang dicetak adalah jam persiapan dapur.
	prepTime := subtractHours(o.Event.Time, kitchenPrepOffsetHours)

	for _, sec := range includedSections(o) {
		blocks = append(blocks, TableBlock{
			FontSize: baseFontSize,
			Rows: [][]string{
				{"Pemesan", ": " + o.Customer.Name, "Hari, Tgl", ": " + formatHeaderDate(o.Event.Date)},
				{"Gedung", ": " + o.Event.Building, "", ""},
				{"Jam", ": " + prepTime, "", ""},
				{"Acara", ": " + string(o.Event.Category), "", ""},
			},
		})
		blocks = append(blocks, RuleLine{})
		blocks = append(blocks, TextBlock{Text: sec.Name, FontSize: titleFontSize, Bold: true})

		rows := make([][]string, 0, len(sec.Portions))
		for i, p := range sec.Portions {
			rows = append(rows, []string{
				fmt.Sprintf("%d.", i+1),
				p.Name,
				fmt.Sprintf("%d porsi", p.Count),
			})
		}
		blocks = append(blocks, TableBlock{
			Header:   []string{"", "Nama Menu", "porsi"},
			Rows:     rows,
			FontSize: kitchenFontSize,
			Indent:   true,
		})
		blocks = append(blocks, sectionNoteBlocks(sec.Note, 15)...)
		blocks = append(blocks, RuleLine{})
		blocks = append(blocks, PageBreak{})
	}

	// Catatan pesanan hanya ikut kalau memang diisi.
	if o.Note != "" {
		blocks = append(blocks,
			TextBlock{Text: "Catatan Pesanan", Bold: true, FontSize: baseFontSize, Indent: true},
			TextBlock{Text: o.Note, FontSize: baseFontSize, Indent: true},
		)
	}

	return Document{
		Title:       FileName(o, VariantKitchenSheet),
		Orientation: OrientationLandscape,
		Blocks:      blocks,
	}
}
