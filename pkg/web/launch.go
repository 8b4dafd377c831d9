package web

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CountdownScript subscribes the launch gate to the countdown stream.
const CountdownScript = "/static/countdown.js"

var countdownUnits = []string{"Days", "Hours", "Minutes", "Seconds"}

// LaunchPage is the pre-launch gate. Display is the "DD:HH:MM:SS" reading
// taken when the page was rendered.
func LaunchPage(v LaunchView) g.Node {
	return Layout(
		PageConfig{
			Title:   "Medireon | Launching Soon",
			Scripts: []string{CountdownScript},
		},
		Toast(v.Notice),
		Div(
			ID("launch-gate"),
			Class("min-h-screen flex flex-col items-center justify-center px-4 pt-24 text-center"),
			g.Attr("data-launched", boolAttr(v.Launched)),
			g.Attr("data-stream", "/api/countdown/stream"),
			g.If(v.Launched, launchedPanel()),
			g.If(!v.Launched, countdownPanel(v.Display)),
			g.If(!v.Launched, launchSignup(v)),
		),
	)
}

func launchedPanel() g.Node {
	return Div(
		ID("launched"),
		H1(Class("text-4xl md:text-5xl font-bold text-blue-700"), g.Text("We're live!")),
		P(Class("mt-4 text-gray-600"), g.Text(AppName+" is now available. Explore the platform below.")),
		A(Href("/"), Class("btn btn-primary mt-6"), g.Text("Explore "+AppName)),
	)
}

func countdownPanel(display string) g.Node {
	parts := strings.Split(display, ":")
	if len(parts) != len(countdownUnits) {
		parts = []string{"--", "--", "--", "--"}
	}

	cells := make([]g.Node, 0, len(parts))
	for i, unit := range countdownUnits {
		cells = append(cells, Div(
			Class("flex flex-col items-center bg-blue-50 rounded-xl px-4 py-3 min-w-20"),
			Span(
				Class("text-3xl md:text-5xl font-bold tabular-nums text-blue-700"),
				g.Attr("data-unit", strings.ToLower(unit)),
				g.Text(parts[i]),
			),
			Span(Class("text-xs uppercase tracking-wide text-gray-500"), g.Text(unit)),
		))
	}

	return Div(
		ID("countdown"),
		H1(Class("text-4xl md:text-5xl font-bold"), g.Text(AppName+" is launching soon")),
		P(Class("mt-4 text-gray-600"), g.Text("Smart hospital management for modern healthcare. Be the first to know when we go live.")),
		Div(
			Class("flex gap-3 md:gap-6 justify-center mt-8"),
			g.Attr("aria-live", "polite"),
			g.Group(cells),
		),
	)
}

func launchSignup(v LaunchView) g.Node {
	if v.Subscribed {
		return P(
			ID("launch-thanks"),
			Class("mt-10 text-green-600 font-medium"),
			g.Text("Thanks for subscribing! We'll notify you at launch."),
		)
	}
	return Div(
		ID("launch-signup"),
		Class("mt-10 w-full"),
		P(Class("mb-3 text-sm text-gray-500"), g.Text("Get notified when we launch.")),
		emailForm("launch", "Notify Me", v.Form),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
