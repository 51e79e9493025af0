package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/listparty/listparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outKey        = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-typed watcher family for the signals package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output path",
				Value: "signals/watchers.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for watchers started")
	defer func() {
		log.Printf("Codegen for watchers finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	contents := templates.WatchersGen(count)
	return os.WriteFile(cmd.String(outKey), []byte(contents), 0644)
}
