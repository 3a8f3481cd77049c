package post

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PostId keeps the identifier exactly as the server sent it (a JSON number
// or string literal), so it survives a round trip unchanged.
type PostId string

func (id PostId) String() string {
	if s, err := strconv.Unquote(string(id)); err == nil {
		return s
	}
	return string(id)
}

func (id PostId) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

func (id *PostId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return fmt.Errorf("post: invalid id literal %q", data)
	}
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	*id = PostId(data)
	return nil
}

type Post struct {
	Id      PostId `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`

	// Object as received from the API. Re-encoding the post returns it
	// untouched, fields we don't model included.
	raw json.RawMessage
}

type wirePost Post

func (p *Post) UnmarshalJSON(data []byte) error {
	var wp wirePost
	if err := json.Unmarshal(data, &wp); err != nil {
		return err
	}
	*p = Post(wp)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (p Post) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return json.Marshal(wirePost(p))
}

// Draft is the not yet submitted content of the post form.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Complete reports whether every field is filled in.
func (d Draft) Complete() bool {
	return d.Title != "" && d.Content != "" && d.Author != ""
}
