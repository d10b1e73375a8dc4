package routes

import (
	"html/template"
	"time"

	"blogly/models"
)

// TemplateFuncs is registered on the router before templates are loaded.
var TemplateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"hasTag": func(tags []models.Tag, id uint) bool {
		for _, tag := range tags {
			if tag.ID == id {
				return true
			}
		}
		return false
	},
}
