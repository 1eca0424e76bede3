package web

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	. "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	. "maragu.dev/gomponents/html"
)

const (
	registrosID = "registros"
	toastID     = "toast"
)

// Severity selects the toast styling.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Toast is a transient notification.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
}

// pageOptions carries the presentation settings of the review page.
type pageOptions struct {
	DatastarURL   string
	DocumentsBase string
	ToastTTL      time.Duration
}

// shellPage renders the full document. The list container starts in the
// loading state and asks for its contents once mounted.
func shellPage(opts pageOptions) Node {
	return Doctype(
		HTML(
			Lang("es"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(Text("Registros Fiscales")),
				Link(Rel("stylesheet"), Href("/ui/static/app.css")),
				Script(Type("module"), Src(opts.DatastarURL)),
			),
			Body(
				Main(
					Class("container"),
					data.Signals(map[string]any{"busy": false}),
					H1(Class("title"), Text("Registros Fiscales")),
					Div(
						ID(registrosID),
						Class("center"),
						Attr("data-init", "@get('/ui/registros')"),
						P(Class("muted"), Text("Cargando registros...")),
					),
					toastSlot(nil, 0),
				),
			),
		),
	)
}

// registrosFragment renders the list container for the given records.
func registrosFragment(records []Registro, documentsBase string) Node {
	if len(records) == 0 {
		return Div(ID(registrosID), P(Class("muted"), Text("No hay registros")))
	}

	cards := make([]Node, 0, len(records))
	for _, r := range records {
		cards = append(cards, registroCard(r, documentsBase))
	}
	return Div(ID(registrosID), Group(cards))
}

// registrosErrorFragment replaces the list when the API could not be read.
func registrosErrorFragment(message string) Node {
	return Div(ID(registrosID), P(Class("error-text"), Text(message)))
}

func registroCard(r Registro, documentsBase string) Node {
	rec := r.record()
	label, badgeClass := badge(r.Aprobacion)

	return Div(
		Class("card"),
		Div(
			Class("card-header"),
			Span(Class("rfc"), Text(r.RFC)),
			Span(Class("badge "+badgeClass), Text(label)),
		),
		P(Strong(Text("Cliente:")), Text(" "+r.Nombre)),
		P(Class("periodo"), Strong(Text("Periodo:")), Text(" "+r.Periodo)),
		Div(
			Class("actions"),
			decisionButton(r.RFC, true, "Aprobar", "btn-approve", rec.IsApproved()),
			decisionButton(r.RFC, false, "Rechazar", "btn-reject", rec.IsRejected()),
			A(
				Class("btn btn-pdf"),
				Href(documentURL(documentsBase, r.RFC)),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Text("Descargar PDF"),
			),
		),
	)
}

func decisionButton(rfc string, approve bool, label, class string, disabled bool) Node {
	if disabled {
		return Button(Type("button"), Class("btn "+class), Disabled(), Text(label))
	}
	// $busy is raised while any decision is in flight so requests stay serial.
	return Button(
		Type("button"),
		Class("btn "+class),
		Attr("data-on:click", fmt.Sprintf("@post('%s')", decisionURL(rfc, approve))),
		Attr("data-indicator", "busy"),
		Attr("data-attr:disabled", "$busy"),
		Text(label),
	)
}

// toastSlot renders the notification container. A non-nil toast removes
// itself after ttl; its unique id stops a later toast from inheriting the timer.
func toastSlot(t *Toast, ttl time.Duration) Node {
	if t == nil {
		return Div(ID(toastID))
	}
	return Div(
		ID(toastID),
		Div(
			ID(t.ID),
			Class("toast toast-"+string(t.Severity)),
			Role("status"),
			Attr("data-init", fmt.Sprintf("setTimeout(() => el.remove(), %d)", ttl.Milliseconds())),
			Text(t.Message),
		),
	)
}

func decisionURL(rfc string, approve bool) string {
	return fmt.Sprintf("/ui/registros/%s/aprobacion?valor=%t", url.PathEscape(rfc), approve)
}

func documentURL(base, rfc string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(rfc) + ".pdf"
}
