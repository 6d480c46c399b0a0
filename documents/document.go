package documents

// Paket documents menyusun isi logis dokumen pesanan (invoice, surat jalan,
// surat dapur) sebagai urutan blok cetak, terpisah dari mesin PDF-nya.
// Assembler hanya membaca field turunan order yang sudah dihitung; tidak ada
// total yang dihitung ulang di sini.

type Variant string

const (
	VariantInvoice      Variant = "invoice"
	VariantDeliveryNote Variant = "surat-jalan"
	VariantKitchenSheet Variant = "surat-dapur"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "P"
	OrientationLandscape Orientation = "L"
)

// Block adalah satu unit cetak. Renderer memproses blok berurutan.
type Block interface {
	blockMarker()
}

// TextBlock -> paragraf teks tunggal.
type TextBlock struct {
	Text     string
	FontSize float64
	Bold     bool
	Centered bool
	Indent   bool
}

// TableBlock -> tabel tanpa garis. Header boleh kosong.
type TableBlock struct {
	Header   []string
	Rows     [][]string
	FontSize float64
	Indent   bool
}

// RuleLine -> garis pemisah horizontal selebar halaman.
type RuleLine struct{}

// PageBreak -> paksa pindah halaman.
type PageBreak struct{}

func (TextBlock) blockMarker()  {}
func (TableBlock) blockMarker() {}
func (RuleLine) blockMarker()   {}
func (PageBreak) blockMarker()  {}

type Document struct {
	Title       string
	Orientation Orientation
	Blocks      []Block
}
