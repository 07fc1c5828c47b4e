package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/luce/internal/luce/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := luce(); err != nil {
		logrus.Fatal(err)
	}
}

func luce() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
