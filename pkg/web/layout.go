package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	SiteURL     string
	Scripts     []string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Medireon | Hospital Management System SaaS for Modern Healthcare"
	}

	if config.Description == "" {
		config.Description = "Medireon is a cloud-based Hospital Management System (HMS) that empowers healthcare providers with patient management, billing, EMR, telemedicine, and analytics."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("select-none"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("application-name"), Content(AppName)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:site_name"), Content(AppName)),
				g.If(config.SiteURL != "", Meta(g.Attr("property", "og:url"), Content(config.SiteURL))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("bg-white text-gray-800"),
				Navbar(),
				Main(g.Group(content)),
				PageFooter(),
				g.Group(g.Map(config.Scripts, func(src string) g.Node {
					return Script(Src(src), g.Attr("defer"))
				})),
			),
		),
	})
}

func Navbar() g.Node {
	links := []struct {
		Href string
		Text string
	}{
		{"/#about", "About"},
		{"/#features", "Features"},
		{"/#pricing", "Pricing"},
		{"/#faq", "FAQ"},
	}

	return Header(
		Class("fixed top-0 inset-x-0 z-40 bg-white/90 backdrop-blur shadow-sm"),
		Nav(
			Class("container mx-auto flex items-center justify-between px-4 py-3"),
			A(Href("/"), Class("font-bold text-xl text-blue-700"), g.Text(AppName)),
			Ul(
				Class("hidden md:flex gap-6 text-sm font-medium"),
				g.Group(g.Map(links, func(l struct {
					Href string
					Text string
				}) g.Node {
					return Li(A(Href(l.Href), Class("hover:text-blue-600"), g.Text(l.Text)))
				})),
			),
			A(Href("/?modal=demo"), Class("btn btn-primary btn-sm"), g.Text("Book a Demo")),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("bg-gray-900 text-gray-300 py-10 mt-16"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row justify-between gap-6"),
			Div(
				P(Class("font-bold text-white text-lg"), g.Text(AppName)),
				P(Class("text-sm mt-2"), g.Text("Smart hospital management for modern healthcare.")),
			),
			Div(
				Class("text-sm space-y-2"),
				P(g.Text("Contact: "), A(Href("mailto:"+contactEmail), g.Text(contactEmail))),
				P(A(Href("/?privacy=1"), Class("underline"), g.Text("Privacy Policy"))),
			),
		),
	)
}

// Toast renders a notice; nil renders nothing.
func Toast(n *Notice) g.Node {
	if n == nil {
		return nil
	}
	classes := "alert alert-success"
	if n.Kind == NoticeError {
		classes = "alert alert-error"
	}
	return Div(
		Class("toast toast-top toast-end z-50"),
		g.Attr("role", "status"),
		g.Attr("data-notice", string(n.Kind)),
		Div(Class(classes), Span(g.Text(n.Message))),
	)
}
