package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/flipSOsigma/catering-app/documents"
	"github.com/flipSOsigma/catering-app/models"
)

// GenerateWhatsAppMessage menyusun teks konfirmasi pesanan untuk dikirim ke
// customer lewat WhatsApp. Formatnya mengikuti template yang sudah dipakai
// tim: blok customer, event, ringkasan, lalu rincian per section.
func GenerateWhatsAppMessage(o models.Order) string {
	var b strings.Builder

	b.WriteString("*NEW ORDER CONFIRMATION*\n")

	b.WriteString("\n*Customer Information*\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Email: %s\n", o.Customer.Email)

	b.WriteString("\n*Event Details*\n")
	fmt.Fprintf(&b, "Type: %s\n", o.Event.Name)
	fmt.Fprintf(&b, "Date: %s\n", documents.FormatFullDate(o.Event.Date))
	fmt.Fprintf(&b, "Time: %s\n", o.Event.Time)
	fmt.Fprintf(&b, "Location: %s\n", o.Event.Location)
	fmt.Fprintf(&b, "Building: %s\n", o.Event.Building)

	b.WriteString("\n*Order Summary*\n")
	fmt.Fprintf(&b, "Invitations: %d\n", o.Invitation)
	fmt.Fprintf(&b, "Visitors: %d\n", o.Visitor)
	fmt.Fprintf(&b, "Total Price: %d\n", o.Price)
	fmt.Fprintf(&b, "Portions: %d\n", o.Portion)
	note := o.Note
	if note == "" {
		note = "N/A"
	}
	fmt.Fprintf(&b, "Note: %s\n", note)

	for _, sec := range o.Sections {
		fmt.Fprintf(&b, "\n*%s*\n", sec.Name)
		fmt.Fprintf(&b, "Portions: %d\n", sec.Portion)
		fmt.Fprintf(&b, "Total: Rp%d\n", sec.TotalPrice)
		if sec.Note != "" {
			fmt.Fprintf(&b, "Note: %s\n", sec.Note)
		}
		for _, p := range sec.Portions {
			name := p.Name
			if name == "" {
				name = "Untitled"
			}
			fmt.Fprintf(&b, "- %s: %d x Rp%d = Rp%d\n", name, p.Count, p.Price, p.TotalPrice)
		}
	}

	fmt.Fprintf(&b, "\n_Generated on %s_", time.Now().Format("02/01/2006 15:04"))

	return b.String()
}

// WhatsAppLink membangun URL wa.me untuk nomor lokal (08xx -> +628xx)
// dengan isi pesan yang sudah di-encode.
func WhatsAppLink(o models.Order, phone string) string {
	formatted := phone
	if strings.HasPrefix(phone, "0") {
		formatted = "+62" + phone[1:]
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", formatted, url.QueryEscape(GenerateWhatsAppMessage(o)))
}
