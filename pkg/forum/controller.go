package forum

import (
	"context"
	"sync"

	"github.com/Leandrotvr/foro-front/pkg/logger"
	"github.com/Leandrotvr/foro-front/pkg/post"
)

//go:generate mockgen -source=controller.go -destination=mocks_test.go -package=forum

type IPostRepo interface {
	GetAll(context.Context) ([]*post.Post, error)
	Add(context.Context, *post.Draft) (*post.Post, error)
}

// State is a point-in-time copy of everything the page shows.
type State struct {
	View  View         `json:"view"`
	Posts []*post.Post `json:"posts"`
	Draft post.Draft   `json:"draft"`
}

// Controller owns the page state: the post list, the form drafts and the
// selected view. Handlers only change it through its methods, and every
// change is announced to the subscribers.
//
// Requests to the API run without holding the lock. Their results are applied
// whenever they arrive, so a slow load still replaces the list even if the
// user has already moved to another view.
type Controller struct {
	repo IPostRepo

	// notifyMu keeps deliveries in the order the changes were made.
	notifyMu sync.Mutex

	mu        sync.Mutex
	view      View
	posts     []*post.Post
	draft     post.Draft
	observers map[int]func(State)
	nextObs   int
}

func NewController(repo IPostRepo) *Controller {
	return &Controller{
		repo:      repo,
		view:      ViewForum,
		posts:     []*post.Post{},
		observers: make(map[int]func(State)),
	}
}

// Mount is the first display of the page.
func (c *Controller) Mount(ctx context.Context) {
	if c.Snapshot().View == ViewForum {
		c.Load(ctx)
	}
}

// Load replaces the post list with what the API returns. A failed request
// is logged and leaves the list as it was.
func (c *Controller) Load(ctx context.Context) {
	posts, err := c.repo.GetAll(ctx)
	if err != nil {
		logger.Log(ctx).Errorf("forum: error fetching posts: %v", err)
		return
	}

	c.update(func() {
		c.posts = posts
	})
}

// SelectView switches the page content. Entering the forum loads the posts;
// picking the view that is already shown does nothing.
func (c *Controller) SelectView(ctx context.Context, v View) {
	changed := c.updateIf(func() bool {
		if c.view == v {
			return false
		}
		c.view = v
		return true
	})
	if changed && v == ViewForum {
		c.Load(ctx)
	}
}

func (c *Controller) SetDraft(d post.Draft) {
	c.update(func() { c.draft = d })
}

func (c *Controller) SetTitle(title string) {
	c.update(func() { c.draft.Title = title })
}

func (c *Controller) SetContent(content string) {
	c.update(func() { c.draft.Content = content })
}

func (c *Controller) SetAuthor(author string) {
	c.update(func() { c.draft.Author = author })
}

// Submit sends the current draft. The created post goes on top of the list
// and the form is cleared; on failure both stay untouched so the user can
// try again.
func (c *Controller) Submit(ctx context.Context) {
	c.send(ctx, c.Snapshot().Draft)
}

// SubmitDraft stores d as the form content and sends exactly d, whatever
// other callers write to the form meanwhile. The form is only cleared if it
// still holds d when the post comes back.
func (c *Controller) SubmitDraft(ctx context.Context, d post.Draft) {
	c.SetDraft(d)
	c.send(ctx, d)
}

func (c *Controller) send(ctx context.Context, d post.Draft) {
	if !d.Complete() {
		logger.Log(ctx).Debugw("forum: draft has empty fields, not submitting", "draft", d)
		return
	}

	created, err := c.repo.Add(ctx, &d)
	if err != nil {
		logger.Log(ctx).Errorf("forum: error creating post: %v", err)
		return
	}

	c.update(func() {
		posts := make([]*post.Post, 0, len(c.posts)+1)
		posts = append(posts, created)
		c.posts = append(posts, c.posts...)
		if c.draft == d {
			c.draft = post.Draft{}
		}
	})
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Subscribe registers fn to be called with a fresh snapshot after every
// change. Calls are made one at a time in the order of the changes, so fn
// must not change the controller itself. The returned func removes it.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

func (c *Controller) update(mutate func()) {
	c.updateIf(func() bool {
		mutate()
		return true
	})
}

// updateIf applies mutate under the lock and, if it reports a change,
// notifies observers outside it.
func (c *Controller) updateIf(mutate func() bool) bool {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if !mutate() {
		c.mu.Unlock()
		return false
	}
	s := c.snapshot()
	observers := make([]func(State), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(s)
	}
	return true
}

func (c *Controller) snapshot() State {
	posts := make([]*post.Post, len(c.posts))
	copy(posts, c.posts)
	return State{
		View:  c.view,
		Posts: posts,
		Draft: c.draft,
	}
}
