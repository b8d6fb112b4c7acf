package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/wassociates/portal/internal/view/dto/auth"
)

// Login renders the sign-in form. A previously submitted email is prefilled
// after a failed attempt.
func Login(data auth.LoginData) cmp.Node {
	return g.Div(
		g.Class("max-w-md mx-auto mt-16 p-8 bg-amber-100 rounded-lg shadow-md border-2 border-amber-300"),
		g.Div(
			g.Class("flex flex-col items-center mb-6"),
			g.H2(
				g.Class("text-3xl font-bold text-center text-amber-900 font-serif"),
				cmp.Text("Wassociates"),
			),
			g.P(g.Class("text-amber-700 text-sm mt-1"), cmp.Text("Yosemite National Park")),
		),
		g.Form(
			g.Method("post"),
			g.Action("/login"),
			g.Class("space-y-5"),
			formField("email", "Email", "email", data.Email),
			formField("password", "Password", "password", ""),
			g.Button(
				g.Type("submit"),
				g.Class("w-full bg-amber-700 hover:bg-amber-800 text-amber-50 py-2 px-4 rounded-md transition duration-200"),
				cmp.Text("Sign In"),
			),
		),
		g.P(
			g.Class("mt-6 text-center text-sm text-amber-700"),
			cmp.Text("Need an account? "),
			g.A(g.Href("/register"), g.Class("underline"), cmp.Text("Sign Up")),
		),
	)
}

// Register renders the account creation form.
func Register(data auth.RegisterData) cmp.Node {
	return g.Div(
		g.Class("max-w-md mx-auto mt-16 p-8 bg-amber-100 rounded-lg shadow-md border-2 border-amber-300"),
		g.H2(
			g.Class("text-3xl font-bold text-center text-amber-900 font-serif mb-6"),
			cmp.Text("Create Account"),
		),
		g.Form(
			g.Method("post"),
			g.Action("/register"),
			g.Class("space-y-5"),
			formField("email", "Email", "email", data.Email),
			formField("password", "Password", "password", ""),
			formField("password_confirm", "Confirm Password", "password", ""),
			g.Button(
				g.Type("submit"),
				g.Class("w-full bg-amber-700 hover:bg-amber-800 text-amber-50 py-2 px-4 rounded-md transition duration-200"),
				cmp.Text("Sign Up"),
			),
		),
		g.P(
			g.Class("mt-6 text-center text-sm text-amber-700"),
			cmp.Text("Already a member? "),
			g.A(g.Href("/login"), g.Class("underline"), cmp.Text("Sign In")),
		),
	)
}

func formField(name, label, inputType, value string) cmp.Node {
	return g.Div(
		g.Label(
			g.For(name),
			g.Class("block text-sm font-medium text-amber-800 mb-1"),
			cmp.Text(label),
		),
		g.Input(
			g.ID(name),
			g.Name(name),
			g.Type(inputType),
			g.Value(value),
			g.Required(),
			g.Class("w-full px-3 py-2 border border-amber-400 bg-amber-50 rounded-md focus:outline-none focus:ring-2 focus:ring-amber-500"),
		),
	)
}
