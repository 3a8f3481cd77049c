package forum

import "fmt"

// View is the top-level content mode of the page.
type View string

const (
	ViewForum    View = "forum"
	ViewSoftware View = "software"
	ViewContact  View = "contact"
)

var Views = []View{ViewForum, ViewSoftware, ViewContact}

func ParseView(name string) (View, error) {
	for _, v := range Views {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("forum: unknown view %q", name)
}

func (v View) Label() string {
	switch v {
	case ViewForum:
		return "Foro"
	case ViewSoftware:
		return "Software"
	case ViewContact:
		return "Contacto"
	}
	return string(v)
}
