package commands

import (
	"fmt"
	"os"

	"audiblebooks/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("audiblebooks error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`audiblebooks - audiobook content API

usage:
  audiblebooks run <config.yml>   start the server
  audiblebooks version            print the version
  audiblebooks help               show this message`) //nolint
}
