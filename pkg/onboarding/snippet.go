// SPDX-License-Identifier: Apache-2.0
package onboarding

import (
	"bytes"
	"strings"
	"text/template"
)

const (
	// DefaultAPIURL is used when no API base URL is configured
	DefaultAPIURL = "https://api.unkey.dev"

	// KeyPlaceholder stands in for the key when none was issued by the wizard
	KeyPlaceholder = "<YOUR_KEY>"
)

// CreateKeyTemplate renders the create-key example request
const CreateKeyTemplate = `curl -XPOST '{{ .BaseURL }}/v1/keys' \
  -H 'Authorization: Bearer {{ .Secret }}' \
  -H 'Content-Type: application/json' \
  -d '{
    "apiId": "{{ .APIID }}"
  }'
`

// VerifyKeyTemplate renders the verify-key example request
const VerifyKeyTemplate = `curl -XPOST '{{ .BaseURL }}/v1/keys/verify' \
  -H 'Content-Type: application/json' \
  -d '{
    "key": "{{ .Key }}"
  }'
`

var (
	createKeyTmpl = template.Must(template.New("create-key").Parse(CreateKeyTemplate))
	verifyKeyTmpl = template.Must(template.New("verify-key").Parse(VerifyKeyTemplate))
)

// snippetData feeds the snippet templates
type snippetData struct {
	BaseURL string
	Secret  string
	APIID   string
	Key     string
}

// Snippet is a rendered example command with the secret it embeds
type Snippet struct {
	text   string
	secret string
}

// Copy returns the unmasked command, which is what copy actions use
func (s Snippet) Copy() string {
	return s.text
}

// Secret returns the embedded secret, empty for placeholder snippets
func (s Snippet) Secret() string {
	return s.secret
}

// HasSecret reports whether the snippet embeds a real secret
func (s Snippet) HasSecret() bool {
	return s.secret != ""
}

// Display returns the command for on-screen rendering. Unless reveal is
// set, every occurrence of the secret is replaced by its masked form.
func (s Snippet) Display(reveal bool) string {
	if reveal || s.secret == "" {
		return s.text
	}
	return strings.ReplaceAll(s.text, s.secret, MaskKey(s.secret))
}

// CreateKeySnippet builds the create-key example authenticated with rootKey
func CreateKeySnippet(baseURL, rootKey, apiID string) Snippet {
	text := render(createKeyTmpl, snippetData{
		BaseURL: NormalizeBaseURL(baseURL),
		Secret:  rootKey,
		APIID:   apiID,
	})
	return Snippet{text: text, secret: rootKey}
}

// VerifyKeySnippet builds the verify-key example. An empty key renders the
// placeholder and the snippet carries no secret.
func VerifyKeySnippet(baseURL, key string) Snippet {
	data := snippetData{
		BaseURL: NormalizeBaseURL(baseURL),
		Key:     key,
	}
	if key == "" {
		data.Key = KeyPlaceholder
	}
	return Snippet{text: render(verifyKeyTmpl, data), secret: key}
}

// NormalizeBaseURL falls back to DefaultAPIURL and trims trailing slashes
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return DefaultAPIURL
	}
	return strings.TrimRight(baseURL, "/")
}

func render(tmpl *template.Template, data snippetData) string {
	var buf bytes.Buffer
	// Templates are parsed at init and only reference snippetData fields,
	// so Execute cannot fail here.
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}
