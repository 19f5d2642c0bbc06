// Command gen_fixture writes the simple.docx test fixture to
// tests/fixtures/simple.docx, creating the directory if needed.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	docxfixture "github.com/little-yangyang/docx-fixture"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := docxfixture.Create(docxfixture.DefaultPath); err != nil {
		log.Fatal().Err(err).Str("path", docxfixture.DefaultPath).Msg("write fixture")
	}
	fmt.Printf("Created %s\n", docxfixture.DefaultPath)
}
