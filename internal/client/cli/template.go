package cli

const objectTemplate = `
ID:        {{.ID}}
{{- if .OwnerID }}
Owner:     {{.OwnerID}}
{{- end}}
{{- if .Timestamp }}
Timestamp: {{timestamp .Timestamp}}
{{- end}}
Fields:    {{fields .Fields}}
`
