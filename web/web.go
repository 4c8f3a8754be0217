package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Mount serves the single-page client at the root and falls back to
// index.html for client-side routes. API paths keep their JSON 404.
func Mount(r *gin.Engine) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	index, err := fs.ReadFile(sub, "index.html")
	if err != nil {
		panic(err)
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.FS(sub)))
	serveIndex := func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	}

	r.GET("/", serveIndex)
	r.GET("/app.js", gin.WrapH(fileServer))
	r.GET("/styles.css", gin.WrapH(fileServer))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		serveIndex(c)
	})
}
