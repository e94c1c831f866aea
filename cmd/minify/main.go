package main

import (
	"fmt"
	"log"
	"os"

	"github.com/woozymasta/trails/assets"
	"github.com/woozymasta/trails/internal/config"
)

// Writes a standalone copy of the viewer page, centered on the default area.
func main() {
	out := "assets/index.html"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	page, err := assets.Build(assets.View{
		CenterLat: config.DefaultCenterLat,
		CenterLon: config.DefaultCenterLon,
		Zoom:      config.DefaultZoom,
	})
	if err != nil {
		log.Fatal("error build page:", err)
	}

	if err := os.WriteFile(out, page, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("minify done")
}
