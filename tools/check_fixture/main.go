// Command check_fixture lists the entries of the generated fixture archive
// and dumps word/document.xml for manual inspection.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	docxfixture "github.com/little-yangyang/docx-fixture"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	f, err := os.Open(docxfixture.DefaultPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open fixture")
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		log.Fatal().Err(err).Msg("stat fixture")
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		log.Fatal().Err(err).Msg("read archive")
	}
	for _, zf := range zr.File {
		fmt.Println(zf.Name)
		if zf.Name == docxfixture.DocumentPart {
			rc, err := zf.Open()
			if err != nil {
				log.Fatal().Err(err).Str("entry", zf.Name).Msg("open entry")
			}
			io.Copy(os.Stdout, rc)
			rc.Close()
			fmt.Println()
		}
	}
}
