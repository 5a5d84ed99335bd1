package messages

import (
	"fmt"
	"html"
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/domain/pricing"
)

// Composer renders the transactional emails sent by the workflow.
type Composer struct {
	catalog  *pricing.Catalog
	baseURL  string
	teamName string
}

func NewComposer(catalog *pricing.Catalog, baseURL, teamName string) *Composer {
	if catalog == nil {
		catalog = pricing.Default()
	}
	if strings.TrimSpace(teamName) == "" {
		teamName = "The Team"
	}
	return &Composer{catalog: catalog, baseURL: strings.TrimRight(baseURL, "/"), teamName: teamName}
}

func (m *Composer) ProposalSent(p entities.Proposal, lead entities.Lead) entities.EmailMessage {
	link := fmt.Sprintf("%s/proposals/%s", m.baseURL, p.ID)
	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nYour proposal is ready for review.\n\n", firstNonEmpty(lead.Name, "there"))
	for _, it := range p.LineItems {
		fmt.Fprintf(&text, "- %s: %s x %s = %s\n", it.Description, formatQty(it.Quantity), formatMoney(it.UnitPrice), formatMoney(it.Total))
	}
	fmt.Fprintf(&text, "\nTotal: %s\n\nReview and accept: %s\n\n%s\n", formatMoney(p.TotalAmount), link, m.teamName)

	var rows strings.Builder
	for _, it := range p.LineItems {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(it.Description), formatQty(it.Quantity), formatMoney(it.UnitPrice), formatMoney(it.Total))
	}
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Your proposal is ready for review.</p><table>%s</table><p><strong>Total: %s</strong></p><p><a href="%s">Review and accept</a></p><p>%s</p>`,
		html.EscapeString(firstNonEmpty(lead.Name, "there")), rows.String(), formatMoney(p.TotalAmount), html.EscapeString(link), html.EscapeString(m.teamName))

	return entities.EmailMessage{
		Kind:    entities.EmailKindProposal,
		To:      lead.Email,
		Subject: "Your proposal is ready",
		Text:    text.String(),
		HTML:    body,
	}
}

func (m *Composer) Receipt(o entities.Order) entities.EmailMessage {
	paidAt := ""
	if o.PaymentDate != nil {
		paidAt = o.PaymentDate.UTC().Format("January 2, 2006")
	}
	amount := o.AmountPaid
	if amount <= 0 {
		amount = o.Total
	}
	text := fmt.Sprintf("Hi %s,\n\nThanks for your payment.\n\nOrder: %s\nPackage: %s\nAmount: %s\nMethod: %s\nDate: %s\nReference: %s\n\n%s\n",
		firstNonEmpty(o.CustomerName, "there"), o.ID, m.catalog.DisplayName(o.Package), formatMoney(amount),
		firstNonEmpty(o.PaymentMethod, "card"), paidAt, o.StripePaymentIntentID, m.teamName)
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Thanks for your payment.</p><ul><li>Order: %s</li><li>Package: %s</li><li>Amount: %s</li><li>Method: %s</li><li>Date: %s</li><li>Reference: %s</li></ul><p>%s</p>`,
		html.EscapeString(firstNonEmpty(o.CustomerName, "there")), html.EscapeString(o.ID), html.EscapeString(m.catalog.DisplayName(o.Package)),
		formatMoney(amount), html.EscapeString(firstNonEmpty(o.PaymentMethod, "card")), paidAt, html.EscapeString(o.StripePaymentIntentID), html.EscapeString(m.teamName))

	return entities.EmailMessage{
		Kind:    entities.EmailKindReceipt,
		To:      o.CustomerEmail,
		Subject: fmt.Sprintf("Payment receipt for order %s", o.ID),
		Text:    text,
		HTML:    body,
	}
}

// Welcome lists the package features; packages without a feature list get a
// generic onboarding message.
func (m *Composer) Welcome(o entities.Order) entities.EmailMessage {
	name := m.catalog.DisplayName(o.Package)
	features, ok := m.catalog.Features(o.Package)

	var text, list strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\nWelcome aboard! Your %s project is officially underway.\n\n", firstNonEmpty(o.CustomerName, "there"), name)
	if ok {
		text.WriteString("Here is what's included:\n")
		for _, f := range features {
			fmt.Fprintf(&text, "- %s\n", f)
			fmt.Fprintf(&list, "<li>%s</li>", html.EscapeString(f))
		}
	} else {
		text.WriteString("Our team will reach out shortly to walk you through the scope we agreed on.\n")
	}
	text.WriteString("\nNext, we'll send you a short project brief and a link to book your kickoff call.\n\n")
	text.WriteString(m.teamName + "\n")

	included := "<p>Our team will reach out shortly to walk you through the scope we agreed on.</p>"
	if ok {
		included = "<p>Here is what's included:</p><ul>" + list.String() + "</ul>"
	}
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Welcome aboard! Your %s project is officially underway.</p>%s<p>Next, we'll send you a short project brief and a link to book your kickoff call.</p><p>%s</p>`,
		html.EscapeString(firstNonEmpty(o.CustomerName, "there")), html.EscapeString(name), included, html.EscapeString(m.teamName))

	return entities.EmailMessage{
		Kind:    entities.EmailKindWelcome,
		To:      o.CustomerEmail,
		Subject: fmt.Sprintf("Welcome! Your %s project has started", name),
		Text:    text.String(),
		HTML:    body,
	}
}

func (m *Composer) PaymentLink(o entities.Order) entities.EmailMessage {
	text := fmt.Sprintf("Hi %s,\n\nYour invoice for order %s is ready. Total due: %s.\n\nPay securely online: %s\n\n%s\n",
		firstNonEmpty(o.CustomerName, "there"), o.ID, formatMoney(o.Total), o.StripePaymentLinkURL, m.teamName)
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Your invoice for order %s is ready. Total due: <strong>%s</strong>.</p><p><a href="%s">Pay securely online</a></p><p>%s</p>`,
		html.EscapeString(firstNonEmpty(o.CustomerName, "there")), html.EscapeString(o.ID), formatMoney(o.Total),
		html.EscapeString(o.StripePaymentLinkURL), html.EscapeString(m.teamName))

	return entities.EmailMessage{
		Kind:    entities.EmailKindPaymentLink,
		To:      o.CustomerEmail,
		Subject: fmt.Sprintf("Invoice for order %s", o.ID),
		Text:    text,
		HTML:    body,
	}
}

// NewPaidProject is the internal alert announcing a paid order.
func (m *Composer) NewPaidProject(to string, n entities.NewPaidProjectNotice) entities.EmailMessage {
	text := fmt.Sprintf("New paid project\n\nOrder: %s\nCompany: %s\nPackage: %s\nTotal: %s\nClient: %s <%s>\nProject: %s\nBrief: %s (awaiting admin)\nPaid at: %s\n",
		n.OrderID, n.CompanyID, m.catalog.DisplayName(n.Package), formatMoney(n.Total), n.CustomerName, n.CustomerEmail,
		n.ProjectID, n.BriefID, n.PaidAt.UTC().Format("2006-01-02 15:04 MST"))
	body := "<pre>" + html.EscapeString(text) + "</pre>"

	return entities.EmailMessage{
		Kind:    entities.EmailKindAdminAlert,
		To:      to,
		Subject: fmt.Sprintf("[New paid project] %s - %s", m.catalog.DisplayName(n.Package), n.OrderID),
		Text:    text,
		HTML:    body,
	}
}

// KickoffInvite asks the client to book the kickoff call.
func (m *Composer) KickoffInvite(o entities.Order, bookingURL string) entities.EmailMessage {
	text := fmt.Sprintf("Hi %s,\n\nLet's get your project started. Please pick a time for our kickoff call: %s\n\n%s\n",
		firstNonEmpty(o.CustomerName, "there"), bookingURL, m.teamName)
	body := fmt.Sprintf(`<p>Hi %s,</p><p>Let's get your project started.</p><p><a href="%s">Book your kickoff call</a></p><p>%s</p>`,
		html.EscapeString(firstNonEmpty(o.CustomerName, "there")), html.EscapeString(bookingURL), html.EscapeString(m.teamName))

	return entities.EmailMessage{
		Kind:    entities.EmailKindKickoff,
		To:      o.CustomerEmail,
		Subject: "Book your project kickoff call",
		Text:    text,
		HTML:    body,
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatQty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
