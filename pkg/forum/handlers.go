package forum

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Leandrotvr/foro-front/pkg/common"
	"github.com/Leandrotvr/foro-front/pkg/logger"
	"github.com/Leandrotvr/foro-front/pkg/post"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	State   State
	Views   []View
	Tech    []TechItem
	Contact ContactInfo
}

// PageHandler turns browser actions into Controller calls. It never reports
// API failures to the browser: the page is simply rendered again with
// whatever state the controller kept.
type PageHandler struct {
	Controller *Controller
	upgrader   websocket.Upgrader
}

func NewPageHandler(c *Controller) *PageHandler {
	return &PageHandler{
		Controller: c,
	}
}

func (ph *PageHandler) Register(r *mux.Router) {
	r.HandleFunc("/", ph.Index).Methods("GET")
	r.HandleFunc("/view/{view}", ph.SelectView).Methods("POST")
	r.HandleFunc("/posts", ph.Submit).Methods("POST")
	r.HandleFunc("/api/state", ph.State).Methods("GET")
	r.HandleFunc("/ws", ph.Stream).Methods("GET")
}

// Index displays the page. Every display on the forum fetches the posts
// again, so a failed fetch is retried by reloading the page.
func (ph *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ph.Controller.Mount(context.WithoutCancel(r.Context()))

	data := pageData{
		State:   ph.Controller.Snapshot(),
		Views:   Views,
		Tech:    TechStack,
		Contact: Contact,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logger.Log(r.Context()).Errorf("forum/handlers: can't render page: %v", err)
	}
}

func (ph *PageHandler) SelectView(w http.ResponseWriter, r *http.Request) {
	v, err := ParseView(mux.Vars(r)["view"])
	if err != nil {
		logger.Log(r.Context()).Errorf("forum/handlers: %v", err)
		common.WriteMsg(w, "view not found", http.StatusNotFound)
		return
	}

	// A browser that goes away does not cancel the load.
	ph.Controller.SelectView(context.WithoutCancel(r.Context()), v)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ph *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.Log(r.Context()).Errorf("forum/handlers: can't parse post form: %v", err)
		common.WriteMsg(w, "can't parse form", http.StatusBadRequest)
		return
	}

	ph.Controller.SubmitDraft(context.WithoutCancel(r.Context()), post.Draft{
		Title:   r.PostForm.Get("title"),
		Content: r.PostForm.Get("content"),
		Author:  r.PostForm.Get("author"),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ph *PageHandler) State(w http.ResponseWriter, r *http.Request) {
	common.WriteRespJSON(w, ph.Controller.Snapshot())
}
