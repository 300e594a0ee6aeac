package email

import (
	"bytes"
	"html/template"
)

// TemplateData feeds the built-in mail templates.
type TemplateData struct {
	Subject    string
	ActionURL  string
	ActionText string
}

const baseTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  <p>You are receiving this email because of a request on your Research Connect account.</p>
  <p>
    <a href="{{.ActionURL}}" style="display:inline-block;padding:10px 20px;background:#16a34a;color:#fff;text-decoration:none;border-radius:6px;">
      {{.ActionText}}
    </a>
  </p>
  <p>If the button does not work, copy this link into your browser:<br>{{.ActionURL}}</p>
  <p>If you did not request this, you can safely ignore this email.</p>
</body>
</html>`

var mailTemplate = template.Must(template.New("mail").Parse(baseTemplate))

func renderMail(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := mailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
