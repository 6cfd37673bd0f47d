package main

import (
	"context"
	"flag"
	"log"
	"time"

	"bookcatalog/internal/author"
	"bookcatalog/internal/book"
	"bookcatalog/internal/platform/config"
	"bookcatalog/internal/platform/logging"
	"bookcatalog/internal/platform/postgres"

	"go.uber.org/zap"
)

type seedBook struct {
	title     string
	synopsis  string
	genre     book.Genre
	published string
	favorite  bool
}

type seedAuthor struct {
	name  string
	born  string
	books []seedBook
}

func seedData() []seedAuthor {
	return []seedAuthor{
		{"Gabriel García Márquez", "1927-03-06", []seedBook{
			{"Cien años de soledad", "Siete generaciones de la familia Buendía en Macondo.", book.GenreRealismoMagico, "1967-05-30", true},
			{"El amor en los tiempos del cólera", "Florentino Ariza espera más de medio siglo.", book.GenreRomance, "1985-09-05", false},
		}},
		{"Jane Austen", "1775-12-16", []seedBook{
			{"Pride and Prejudice", "Elizabeth Bennet and Mr. Darcy.", book.GenreRomance, "1813-01-28", true},
		}},
		{"F. Scott Fitzgerald", "1896-09-24", []seedBook{
			{"The Great Gatsby", "A mysterious millionaire on Long Island.", book.GenreFiccion, "1925-04-10", false},
		}},
		{"J. R. R. Tolkien", "1892-01-03", []seedBook{
			{"The Hobbit", "Bilbo Baggins joins a company of dwarves.", book.GenreFantasia, "1937-09-21", true},
			{"The Lord of the Rings", "The quest to destroy the One Ring.", book.GenreFantasiaEpica, "1954-07-29", true},
		}},
		{"Sally Rooney", "1991-02-20", []seedBook{
			{"Normal People", "Connell and Marianne through school and university.", book.GenreFiccionContemporanea, "2018-08-28", false},
		}},
		{"Stephen King", "1947-09-21", []seedBook{
			{"It", "A shapeshifter hunts the children of Derry.", book.GenreTerror, "1986-09-15", false},
			{"The Shining", "Winter caretakers at the Overlook Hotel.", book.GenreTerror, "1977-01-28", true},
		}},
		{"George Orwell", "1903-06-25", []seedBook{
			{"1984", "Big Brother is watching.", book.GenreDistopia, "1949-06-08", true},
		}},
		{"Erich Maria Remarque", "1898-06-22", []seedBook{
			{"All Quiet on the Western Front", "Young soldiers in the trenches of the Great War.", book.GenreBelico, "1929-01-29", false},
		}},
		{"Agatha Christie", "1890-09-15", []seedBook{
			{"Murder on the Orient Express", "Poirot and a snowbound train.", book.GenreMisterio, "1934-01-01", true},
		}},
		{"Isaac Asimov", "1920-01-02", []seedBook{
			{"Foundation", "Hari Seldon and the fall of the Galactic Empire.", book.GenreCienciaFiccion, "1951-06-01", false},
		}},
		{"Hilary Mantel", "1952-07-06", []seedBook{
			{"Wolf Hall", "Thomas Cromwell at the court of Henry VIII.", book.GenreFiccionHistorica, "2009-04-30", false},
		}},
		{"Umberto Eco", "1932-01-05", []seedBook{
			{"The Name of the Rose", "Deaths in a fourteenth century abbey.", book.GenreMisterioHistorico, "1980-01-01", true},
		}},
		{"Robert Kiyosaki", "1947-04-08", []seedBook{
			{"Rich Dad Poor Dad", "Lessons on money from two fathers.", book.GenreFinanzasPersonales, "1997-04-01", false},
		}},
	}
}

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "overall seed timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer pool.Close()

	authors := author.NewService(author.NewPostgresRepo(pool, cfg.DBTimeout), logger)
	books := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout), logger)

	var inserted int
	for _, sa := range seedData() {
		born, err := time.Parse(time.DateOnly, sa.born)
		if err != nil {
			logger.Fatal("bad seed date", zap.String("author", sa.name), zap.Error(err))
		}
		a, err := authors.Create(ctx, author.CreateInput{Name: sa.name, BirthDate: born})
		if err != nil {
			logger.Fatal("insert author", zap.String("author", sa.name), zap.Error(err))
		}

		for _, sb := range sa.books {
			published, err := time.Parse(time.DateOnly, sb.published)
			if err != nil {
				logger.Fatal("bad seed date", zap.String("title", sb.title), zap.Error(err))
			}
			if _, err := books.Create(ctx, book.CreateInput{
				Title:       sb.title,
				Synopsis:    sb.synopsis,
				Genre:       sb.genre,
				PublishedAt: published,
				AuthorID:    a.ID,
				IsFavorite:  sb.favorite,
			}); err != nil {
				logger.Fatal("insert book", zap.String("title", sb.title), zap.Error(err))
			}
			inserted++
		}
	}

	logger.Info("seed complete", zap.Int("books", inserted))
}
