package lecture

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/olehluchkiv/golectures/internal/capability"
	"github.com/olehluchkiv/golectures/internal/diagram"
	"github.com/olehluchkiv/golectures/internal/records"
	"github.com/olehluchkiv/golectures/internal/resolver"
)

// seedAlbums is written when the configured records file does not exist yet.
var seedAlbums = []records.Record{
	{Rank: 1, Year: 1971, Title: "What's Going On", Artist: "Marvin Gaye", Genre: "Soul"},
	{Rank: 2, Year: 1966, Title: "Pet Sounds", Artist: "The Beach Boys", Genre: "Rock"},
	{Rank: 3, Year: 1971, Title: "Blue", Artist: "Joni Mitchell", Genre: "Folk"},
	{Rank: 4, Year: 1976, Title: "Songs in the Key of Life", Artist: "Stevie Wonder", Genre: "Soul"},
	{Rank: 5, Year: 1969, Title: "Abbey Road", Artist: "The Beatles", Genre: "Rock"},
}

func runRecords(env *Env) error {
	path := env.Config.RecordsPath
	albums, err := records.ReadRecords(path)
	if errors.Is(err, os.ErrNotExist) {
		env.Logger.Info("records file missing, seeding", "path", path)
		if err := records.WriteRecords(path, seedAlbums); err != nil {
			return err
		}
		albums, err = records.ReadRecords(path)
	}
	if err != nil {
		return err
	}

	env.printf("Top %d albums from %s:\n", len(albums), path)
	for _, a := range albums {
		env.println(a)
	}

	// Appends and bad input go to a scratch directory so the real file stays put.
	scratch, err := os.MkdirTemp("", "golectures-records-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	notesPath := filepath.Join(scratch, "notes.txt")
	if err := records.WriteLines(notesPath, []string{"Hello, World!", "This is a test file."}); err != nil {
		return err
	}
	notes, err := records.ReadLines(notesPath)
	if err != nil {
		return err
	}
	env.printf("Read back %d lines from %s:\n", len(notes), filepath.Base(notesPath))
	for _, l := range notes {
		env.println(l)
	}

	copyPath := filepath.Join(scratch, "albums.csv")
	if err := records.WriteRecords(copyPath, albums); err != nil {
		return err
	}
	added := records.Record{Rank: len(albums) + 1, Year: 1975, Title: "Born to Run", Artist: "Bruce Springsteen", Genre: "Rock"}
	if err := records.AppendRecord(added, copyPath); err != nil {
		return err
	}
	grown, err := records.ReadRecords(copyPath)
	if err != nil {
		return err
	}
	env.printf("After appending: %d albums, last is %s\n", len(grown), grown[len(grown)-1])

	badPath := filepath.Join(scratch, "bad.csv")
	if err := os.WriteFile(badPath, []byte(records.Header+"\nfirst,1971,Blue,Joni Mitchell,Folk\n"), 0o644); err != nil {
		return err
	}
	_, err = records.ReadRecords(badPath)
	var perr *records.ParseError
	if !errors.As(err, &perr) {
		return errors.New("malformed rank was accepted")
	}
	env.printf("Error parsing line %d: %s\n", perr.Line, perr.Msg)
	return nil
}

func runCapabilities(env *Env) error {
	root, err := resolver.Resolve(env.Config.SourceDir, env.Logger)
	if err != nil {
		return err
	}
	dir, err := resolver.PackageDir(root, "internal/animal")
	if err != nil {
		return err
	}

	result, err := capability.Analyze(env.Ctx, dir, env.Logger)
	if err != nil {
		return err
	}
	result = capability.Filter(result, capability.Options{})

	for _, row := range result.Matrix() {
		env.printf("%-9s %v\n", row.Type, row.Interfaces)
	}
	env.printf("Platypus is a Mammal: %t\n", result.Implements("Platypus", "Mammal"))
	env.println()
	env.println(diagram.GenerateMermaid(result, diagram.DefaultDiagramOptions()))
	return nil
}
