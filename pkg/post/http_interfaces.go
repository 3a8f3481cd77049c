package post

import "net/http"

//go:generate mockgen -source=http_interfaces.go -destination=mocks_test.go -package=post

type IHttpClient interface {
	Do(*http.Request) (*http.Response, error)
}
