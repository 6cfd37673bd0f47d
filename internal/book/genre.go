package book

import "errors"

// ErrInvalidGenre is returned when a genre symbol is not part of the enumeration.
var ErrInvalidGenre = errors.New("invalid genre")

// Genre is the symbolic form of a literary genre as persisted in storage.
type Genre string

const (
	GenreRealismoMagico       Genre = "REALISMO_MAGICO"
	GenreRomance              Genre = "ROMANCE"
	GenreFiccion              Genre = "FICCION"
	GenreFantasia             Genre = "FANTASIA"
	GenreFantasiaEpica        Genre = "FANTASIA_EPICA"
	GenreFiccionContemporanea Genre = "FICCION_CONTEMPORANEA"
	GenreTerror               Genre = "TERROR"
	GenreDistopia             Genre = "DISTOPIA"
	GenreBelico               Genre = "BELICO"
	GenreMisterio             Genre = "MISTERIO"
	GenreCienciaFiccion       Genre = "CIENCIA_FICCION"
	GenreFiccionHistorica     Genre = "FICCION_HISTORICA"
	GenreMisterioHistorico    Genre = "MISTERIO_HISTORICO"
	GenreFinanzasPersonales   Genre = "FINANZAS_PERSONALES"
)

// genres holds the enumeration in canonical order. Never mutated.
var genres = []Genre{
	GenreRealismoMagico,
	GenreRomance,
	GenreFiccion,
	GenreFantasia,
	GenreFantasiaEpica,
	GenreFiccionContemporanea,
	GenreTerror,
	GenreDistopia,
	GenreBelico,
	GenreMisterio,
	GenreCienciaFiccion,
	GenreFiccionHistorica,
	GenreMisterioHistorico,
	GenreFinanzasPersonales,
}

var genreLabels = map[Genre]string{
	GenreRealismoMagico:       "Realismo mágico",
	GenreRomance:              "Romance",
	GenreFiccion:              "Ficción",
	GenreFantasia:             "Fantasía",
	GenreFantasiaEpica:        "Fantasía épica",
	GenreFiccionContemporanea: "Ficción contemporánea",
	GenreTerror:               "Terror",
	GenreDistopia:             "Distopía",
	GenreBelico:               "Bélico",
	GenreMisterio:             "Misterio",
	GenreCienciaFiccion:       "Ciencia ficción",
	GenreFiccionHistorica:     "Ficción histórica",
	GenreMisterioHistorico:    "Misterio histórico",
	GenreFinanzasPersonales:   "Finanzas personales",
}

// AllGenres returns a copy of the enumeration in canonical order.
func AllGenres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// Label returns the human-readable display label, or the symbol itself
// when g is not a member of the enumeration.
func (g Genre) Label() string {
	if label, ok := genreLabels[g]; ok {
		return label
	}
	return string(g)
}

// Valid reports whether g is a member of the enumeration.
func (g Genre) Valid() bool {
	_, ok := genreLabels[g]
	return ok
}

// ParseGenre converts a stored symbol into a Genre.
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", ErrInvalidGenre
	}
	return g, nil
}

// GenreInfo pairs a symbol with its label for clients building genre pickers.
type GenreInfo struct {
	Symbol Genre  `json:"symbol"`
	Label  string `json:"label"`
}

// GenreCatalog lists every genre with its label in canonical order.
func GenreCatalog() []GenreInfo {
	out := make([]GenreInfo, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreInfo{Symbol: g, Label: g.Label()})
	}
	return out
}
