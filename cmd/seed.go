package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"

	"github.com/Leandrotvr/foro-front/pkg/logger"
	"github.com/Leandrotvr/foro-front/pkg/post"
)

var f = faker.New()

type postAdder interface {
	Add(context.Context, *post.Draft) (*post.Post, error)
}

// seed fills an empty forum with fake posts so the page has something to
// show.
func seed(ctx context.Context, repo postAdder, n int) error {
	for i := 0; i < n; i++ {
		created, err := repo.Add(ctx, genDraft())
		if err != nil {
			return fmt.Errorf("seed: can't add post %d of %d: %w", i+1, n, err)
		}
		logger.Log(ctx).Infof("seed: created post %s %q", created.Id, created.Title)
	}
	return nil
}

func genDraft() *post.Draft {
	return &post.Draft{
		Title:   strings.Join(f.Lorem().Words(rand.Intn(5)+3), " "),
		Content: f.Lorem().Paragraph(rand.Intn(3) + 2),
		Author:  strings.ToLower(f.Person().FirstName()),
	}
}
