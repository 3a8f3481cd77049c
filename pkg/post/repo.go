package post

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const DefaultBaseURL = "https://foro-back.onrender.com/api/posts"

// Repo talks to the remote posts API. There is no local storage behind it.
type Repo struct {
	baseURL string
	client  IHttpClient
}

func NewPostRepo(baseURL string, client IHttpClient) *Repo {
	if client == nil {
		client = http.DefaultClient
	}
	return &Repo{
		baseURL: baseURL,
		client:  client,
	}
}

// GetAll fetches every post, in the order the server returns them.
func (r *Repo) GetAll(ctx context.Context) ([]*Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL, nil)
	if err != nil {
		return nil, &RequestError{Op: "get posts", Err: err}
	}

	posts := []*Post{}
	if err := r.do(req, &posts); err != nil {
		err.Op = "get posts"
		return nil, err
	}
	if posts == nil {
		posts = []*Post{}
	}
	return posts, nil
}

// Add creates a post from the draft and returns whatever the server echoed
// back as the created post.
func (r *Repo) Add(ctx context.Context, d *Draft) (*Post, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, &RequestError{Op: "add post", Err: fmt.Errorf("failed encoding draft: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Op: "add post", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var created *Post
	if err := r.do(req, &created); err != nil {
		err.Op = "add post"
		return nil, err
	}
	if created == nil {
		return nil, &RequestError{Op: "add post", Err: errors.New("empty post in response")}
	}
	return created, nil
}

func (r *Repo) do(req *http.Request, dst interface{}) *RequestError {
	resp, err := r.client.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Err: fmt.Errorf("failed reading response body: %w", err)}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &RequestError{Err: fmt.Errorf("failed decoding response body: %w", err)}
	}
	return nil
}
