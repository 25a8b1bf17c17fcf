package common

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var assetsFS embed.FS

func NewHandler() http.Handler {
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	return http.FileServerFS(assets)
}
