package serviceImp

import (
	"errors"
	"strings"
	"unicode/utf8"

	"simpupuk/entities"
	repo "simpupuk/pkg/pedoman/repository"
	"simpupuk/pkg/pedoman/service"
)

const ukuranPotongan = 1200 // characters per searchable chunk

type pedomanSvc struct{ r repo.PedomanRepository }

func New(r repo.PedomanRepository) service.PedomanService { return &pedomanSvc{r} }

func (s *pedomanSvc) UpsertDocument(judul, tags, teks, sourceURL string) (*entities.PedomanDoc, int, error) {
	judul = strings.TrimSpace(judul)
	teks = strings.TrimSpace(teks)
	if judul == "" {
		return nil, 0, errors.New("judul wajib diisi")
	}
	if teks == "" {
		return nil, 0, errors.New("teks wajib diisi")
	}

	doc := &entities.PedomanDoc{Judul: judul, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(doc); err != nil {
		return nil, 0, err
	}

	potongan := potong(teks, ukuranPotongan)
	chunks := make([]entities.PedomanChunk, 0, len(potongan))
	for i, p := range potongan {
		chunks = append(chunks, entities.PedomanChunk{DocID: doc.DocID, Urut: i, Teks: p})
	}
	if err := s.r.BulkInsertChunks(chunks); err != nil {
		return nil, 0, err
	}
	return doc, len(chunks), nil
}

func (s *pedomanSvc) Search(q string, k int) ([]entities.PedomanChunk, error) {
	if k <= 0 {
		k = 6
	}
	return s.r.Search(strings.TrimSpace(q), k)
}

func (s *pedomanSvc) DocsMeta(ids []uint) (map[uint]entities.PedomanDoc, error) {
	return s.r.DocsByIDs(ids)
}

// potong slices text into chunks of roughly n runes, breaking on line
// boundaries where possible so a chunk stays readable on its own.
func potong(teks string, n int) []string {
	var out []string
	var buf strings.Builder
	for _, baris := range strings.Split(teks, "\n") {
		if buf.Len() > 0 && buf.Len()+len(baris)+1 > n {
			out = append(out, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
		// a single oversized line still gets hard-split, on a rune boundary
		for len(baris) > n {
			potongDi := n
			for potongDi > 0 && !utf8.RuneStart(baris[potongDi]) {
				potongDi--
			}
			out = append(out, strings.TrimSpace(baris[:potongDi]))
			baris = baris[potongDi:]
		}
		if baris != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(baris)
		}
	}
	if strings.TrimSpace(buf.String()) != "" {
		out = append(out, strings.TrimSpace(buf.String()))
	}
	return out
}
