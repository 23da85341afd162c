package handlers

import "html/template"

const SearchPageTemplate = "search.html"

var templates = template.Must(template.New(SearchPageTemplate).Parse(`<!DOCTYPE html>
<html>
<head><title>Search</title></head>
<body>
<h1>Search</h1>
{{if .SignedIn}}<p>Signed in as {{.Email}}</p>
{{else}}<p>Not signed in</p>{{end}}
</body>
</html>
`))

// Templates returns the HTML templates served by the page handlers.
func Templates() *template.Template {
	return templates
}
