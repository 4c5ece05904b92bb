package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const Welcome = "welcome"

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your account is ready. Start adding your recipes, tags and ingredients.</p>
    <p style="color:#888;font-size:12px">If you did not create this account, you can ignore this email.</p>
  </body>
</html>`))

// Render renders the named template with data and returns subject, text and
// HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		text = "Welcome! Your account is ready."
		return "Welcome to Recipe API", text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
