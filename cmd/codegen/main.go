package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/knutsoned/lazysignals/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "count"
	outPathKey  = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Regenerate the typed arity wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest wrapper arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outPathKey,
				Usage: "Output file, relative to the repo root",
				Value: "arity.go",
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
	log.Printf("Codegen started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outPathKey)

	contents := templates.ArityGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}
