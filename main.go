package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"courseplan/config"
	"courseplan/menu"
	"courseplan/version"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.ShowVersion {
		fmt.Println(version.String())
		return
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	session := menu.New(cfg, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		log.Fatal(err)
	}
}
