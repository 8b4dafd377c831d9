package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// formTarget is the POST target for a form kind.
func formTarget(kind string) string {
	return "/forms/" + kind
}

func fieldID(kind, name string) string {
	return kind + "-" + name
}

func fieldError(kind, name string, st FormState) g.Node {
	msg := st.Error(name)
	if msg == "" {
		return nil
	}
	return P(
		ID(fieldID(kind, name)+"-error"),
		Class("text-red-500 text-sm mt-1"),
		g.Attr("data-field-error", name),
		g.Text(msg),
	)
}

func inputField(kind, name, labelText, inputType, placeholder string, st FormState, extra ...g.Node) g.Node {
	id := fieldID(kind, name)
	classes := "input input-bordered w-full"
	if st.Error(name) != "" {
		classes += " input-error"
	}
	return Div(
		Class("form-control mb-3"),
		LabelEl(g.Attr("for", id), Class("label text-sm font-medium"), g.Text(labelText)),
		Input(
			ID(id),
			Type(inputType),
			Name(name),
			Value(st.Value(name)),
			Placeholder(placeholder),
			Class(classes),
			g.If(st.Error(name) != "", g.Attr("aria-invalid", "true")),
			g.Group(extra),
		),
		fieldError(kind, name, st),
	)
}

func textareaField(kind, name, labelText, placeholder string, st FormState) g.Node {
	id := fieldID(kind, name)
	return Div(
		Class("form-control mb-3"),
		LabelEl(g.Attr("for", id), Class("label text-sm font-medium"), g.Text(labelText)),
		Textarea(
			ID(id),
			Name(name),
			g.Attr("rows", "3"),
			Placeholder(placeholder),
			Class("textarea textarea-bordered w-full"),
			g.Text(st.Value(name)),
		),
		fieldError(kind, name, st),
	)
}

func selectField(kind, name, labelText string, options []string, st FormState) g.Node {
	id := fieldID(kind, name)
	current := st.Value(name)
	return Div(
		Class("form-control mb-3"),
		LabelEl(g.Attr("for", id), Class("label text-sm font-medium"), g.Text(labelText)),
		Select(
			ID(id),
			Name(name),
			Class("select select-bordered w-full"),
			Option(Value(""), g.Text("Select a time"), g.If(current == "", Selected())),
			g.Group(g.Map(options, func(opt string) g.Node {
				return Option(Value(opt), g.Text(opt), g.If(opt == current, Selected()))
			})),
		),
		fieldError(kind, name, st),
	)
}

func emailForm(kind, buttonText string, st FormState, hidden ...g.Node) g.Node {
	return FormEl(
		Method("post"),
		Action(formTarget(kind)),
		Class("flex flex-col sm:flex-row gap-3 max-w-md mx-auto"),
		g.Attr("novalidate"),
		g.Group(hidden),
		Div(
			Class("flex-1"),
			Input(
				ID(fieldID(kind, "email")),
				Type("email"),
				Name("email"),
				Value(st.Value("email")),
				Placeholder("Enter your email"),
				g.Attr("aria-label", "Email address"),
				Class("input input-bordered w-full"),
			),
			fieldError(kind, "email", st),
		),
		Button(Type("submit"), Class("btn btn-primary"), g.Text(buttonText)),
	)
}
